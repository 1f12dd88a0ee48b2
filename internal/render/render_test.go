package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "0", Amount(0))
	assert.Equal(t, "1,200,000", Amount(1_200_000))
	assert.Equal(t, "-50,000", Amount(-50000))
}

func TestYen(t *testing.T) {
	assert.Equal(t, "¥720,000", Yen(720000))
	assert.Equal(t, "-¥1,000", Yen(-1000))
}

func TestTable_AlignsWideCharacters(t *testing.T) {
	tbl := NewTable([]string{"コード", "科目", "金額"}, Left, Left, Right)
	tbl.Add("1111", "現金", Amount(5000))
	tbl.Add("4100", "売上高", Amount(1_200_000))
	tbl.Footer("", "合計", Amount(1_205_000))

	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "1111    現金        5,000", lines[2])
	assert.Equal(t, "4100    売上高  1,200,000", lines[3])
	assert.Equal(t, runewidth.StringWidth(lines[2]), runewidth.StringWidth(lines[3]))
	assert.True(t, strings.HasSuffix(lines[5], "1,205,000"))
	assert.Equal(t, 2, tbl.Len())
}
