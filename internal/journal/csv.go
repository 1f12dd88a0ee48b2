package journal

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Header is the CSV header for journal exports.
const Header = "日付,借方コード,借方科目,借方金額,貸方コード,貸方科目,貸方金額,摘要"

// bom lets spreadsheet software detect UTF-8.
const bom = "\ufeff"

const (
	numFields     = 8
	colDate       = 0
	colDebitCode  = 1
	colDebitName  = 2
	colDebitAmt   = 3
	colCreditCode = 4
	colCreditName = 5
	colCreditAmt  = 6
	colDesc       = 7
)

// AccountLookup resolves account ids for export.
type AccountLookup interface {
	Get(id int64) (model.Account, bool)
}

// Row is one journal CSV line with accounts referenced by code.
type Row struct {
	Date         time.Time
	DebitCode    int
	DebitName    string
	DebitAmount  int64
	CreditCode   int
	CreditName   string
	CreditAmount int64
	Description  string
}

// WriteEntries writes entries as a journal CSV with a leading BOM.
func WriteEntries(w io.Writer, entries []model.JournalEntry, accounts AccountLookup) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		debit, ok := accounts.Get(e.DebitAccountID)
		if !ok {
			return fmt.Errorf("row %d: %w: debit account %d", i+2, model.ErrMissingAccount, e.DebitAccountID)
		}
		credit, ok := accounts.Get(e.CreditAccountID)
		if !ok {
			return fmt.Errorf("row %d: %w: credit account %d", i+2, model.ErrMissingAccount, e.CreditAccountID)
		}
		row := Row{
			Date:         e.Date,
			DebitCode:    debit.Code,
			DebitName:    debit.Name,
			DebitAmount:  e.DebitAmount,
			CreditCode:   credit.Code,
			CreditName:   credit.Name,
			CreditAmount: e.CreditAmount,
			Description:  e.Description,
		}
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRows reads a journal CSV. A leading BOM is skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, []byte(bom)) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MarshalRow converts a Row to CSV fields.
func MarshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colDate] = row.Date.Format(model.DateFormat)
	rec[colDebitCode] = strconv.Itoa(row.DebitCode)
	rec[colDebitName] = row.DebitName
	rec[colDebitAmt] = strconv.FormatInt(row.DebitAmount, 10)
	rec[colCreditCode] = strconv.Itoa(row.CreditCode)
	rec[colCreditName] = row.CreditName
	rec[colCreditAmt] = strconv.FormatInt(row.CreditAmount, 10)
	rec[colDesc] = row.Description
	return rec
}

// UnmarshalRow converts CSV fields to a Row. Amounts may carry
// thousands separators.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(model.DateFormat, strings.TrimSpace(record[colDate]))
	if err != nil {
		return Row{}, fmt.Errorf("%w: %q", model.ErrInvalidDate, record[colDate])
	}

	debitCode, err := strconv.Atoi(strings.TrimSpace(record[colDebitCode]))
	if err != nil {
		return Row{}, fmt.Errorf("parsing debit code %q: %w", record[colDebitCode], err)
	}
	creditCode, err := strconv.Atoi(strings.TrimSpace(record[colCreditCode]))
	if err != nil {
		return Row{}, fmt.Errorf("parsing credit code %q: %w", record[colCreditCode], err)
	}

	debitAmt, err := parseAmount(record[colDebitAmt])
	if err != nil {
		return Row{}, fmt.Errorf("parsing debit amount %q: %w", record[colDebitAmt], err)
	}
	creditAmt, err := parseAmount(record[colCreditAmt])
	if err != nil {
		return Row{}, fmt.Errorf("parsing credit amount %q: %w", record[colCreditAmt], err)
	}

	return Row{
		Date:         date,
		DebitCode:    debitCode,
		DebitName:    record[colDebitName],
		DebitAmount:  debitAmt,
		CreditCode:   creditCode,
		CreditName:   record[colCreditName],
		CreditAmount: creditAmt,
		Description:  record[colDesc],
	}, nil
}

func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	return strconv.ParseInt(s, 10, 64)
}
