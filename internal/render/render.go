// Package render formats books data for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

var (
	successSymbol = "✓"
	warnSymbol    = "!"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	headerStyle  = lipgloss.NewStyle().Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"})
)

// Amount formats whole yen with thousands separators.
func Amount(n int64) string {
	return humanize.Comma(n)
}

// Yen formats whole yen with a currency sign.
func Yen(n int64) string {
	if n < 0 {
		return "-¥" + humanize.Comma(-n)
	}
	return "¥" + humanize.Comma(n)
}

// Success prints a confirmation line.
func Success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", successStyle.Render(successSymbol), fmt.Sprintf(format, args...))
}

// Warn prints a highlighted warning line.
func Warn(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", warnStyle.Render(warnSymbol), warnStyle.Render(fmt.Sprintf(format, args...)))
}

// Title prints a section heading.
func Title(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(format, args...)))
}

// Align is a column alignment.
type Align int

const (
	Left Align = iota
	Right
)

// Table is a plain text table. Column widths count East Asian wide
// characters as two cells.
type Table struct {
	Headers []string
	Align   []Align
	rows    [][]string
	footer  []string
}

// NewTable creates a table; numeric columns are usually Right aligned.
func NewTable(headers []string, align ...Align) *Table {
	return &Table{Headers: headers, Align: align}
}

// Add appends a row.
func (t *Table) Add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Footer sets a totals row printed under a rule.
func (t *Table) Footer(cells ...string) {
	t.footer = cells
}

// Len returns the number of body rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Write prints the table.
func (t *Table) Write(w io.Writer) error {
	widths := make([]int, len(t.Headers))
	for _, row := range append(append([][]string{t.Headers}, t.rows...), t.footer) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(t.line(t.Headers, widths)))
	b.WriteByte('\n')
	b.WriteString(rule(widths))
	b.WriteByte('\n')
	for _, row := range t.rows {
		b.WriteString(t.line(row, widths))
		b.WriteByte('\n')
	}
	if t.footer != nil {
		b.WriteString(rule(widths))
		b.WriteByte('\n')
		b.WriteString(t.line(t.footer, widths))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Table) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		if i < len(t.Align) && t.Align[i] == Right {
			parts[i] = runewidth.FillLeft(cell, width)
		} else {
			parts[i] = runewidth.FillRight(cell, width)
		}
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func rule(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return strings.Repeat("-", total+2*(len(widths)-1))
}
