package journal

import (
	"errors"
	"fmt"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// ValidationError describes a single rule an entry breaks.
type ValidationError struct {
	Rule   error
	Detail string
}

func (e ValidationError) Error() string {
	if e.Detail == "" {
		return e.Rule.Error()
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Detail)
}

func (e ValidationError) Unwrap() error {
	return e.Rule
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id int64) bool
}

// ValidateEntry returns every rule the entry breaks, in a fixed order:
// date, account references, same account, balance, amount sign.
func ValidateEntry(e model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	if e.Date.IsZero() {
		errs = append(errs, ValidationError{Rule: model.ErrInvalidDate, Detail: "date is required"})
	}

	if !accounts.Exists(e.DebitAccountID) {
		errs = append(errs, ValidationError{
			Rule:   model.ErrMissingAccount,
			Detail: fmt.Sprintf("debit account %d", e.DebitAccountID),
		})
	}
	if !accounts.Exists(e.CreditAccountID) {
		errs = append(errs, ValidationError{
			Rule:   model.ErrMissingAccount,
			Detail: fmt.Sprintf("credit account %d", e.CreditAccountID),
		})
	}

	if e.DebitAccountID == e.CreditAccountID {
		errs = append(errs, ValidationError{
			Rule:   model.ErrSameAccount,
			Detail: fmt.Sprintf("account %d", e.DebitAccountID),
		})
	}

	if e.DebitAmount != e.CreditAmount {
		errs = append(errs, ValidationError{
			Rule:   model.ErrUnbalancedAmount,
			Detail: fmt.Sprintf("debit %d != credit %d", e.DebitAmount, e.CreditAmount),
		})
	}

	if e.DebitAmount <= 0 || e.CreditAmount <= 0 {
		errs = append(errs, ValidationError{
			Rule:   model.ErrNonPositiveAmount,
			Detail: fmt.Sprintf("debit %d, credit %d", e.DebitAmount, e.CreditAmount),
		})
	}

	return errs
}

// Check validates an entry and joins the violations into one error,
// so errors.Is matches every broken rule. Returns nil for a valid entry.
func Check(e model.JournalEntry, accounts AccountChecker) error {
	verrs := ValidateEntry(e, accounts)
	if len(verrs) == 0 {
		return nil
	}
	errs := make([]error, len(verrs))
	for i, ve := range verrs {
		errs[i] = ve
	}
	return errors.Join(errs...)
}
