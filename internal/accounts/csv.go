package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Header is the CSV header for chart exports.
const Header = "code,name,classification"

const (
	numFields = 3
	colCode   = 0
	colName   = 1
	colClass  = 2
)

// ReadAccounts reads a chart CSV. IDs are left zero.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a chart CSV including the header.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = strconv.Itoa(acct.Code)
	row[colName] = acct.Name
	row[colClass] = acct.Classification.String()
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	code, err := strconv.Atoi(strings.TrimSpace(record[colCode]))
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing code %q: %w", record[colCode], err)
	}

	class, err := model.ParseClassification(record[colClass])
	if err != nil {
		return model.Account{}, err
	}

	return model.Account{
		Code:           code,
		Name:           record[colName],
		Classification: class,
	}, nil
}
