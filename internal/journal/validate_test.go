package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	ids map[int64]bool
}

func (m *mockAccounts) Exists(id int64) bool {
	return m.ids[id]
}

func newMockAccounts(ids ...int64) *mockAccounts {
	m := &mockAccounts{ids: make(map[int64]bool)}
	for _, id := range ids {
		m.ids[id] = true
	}
	return m
}

var defaultAccounts = newMockAccounts(1, 2, 3)

func validEntry() model.JournalEntry {
	return model.JournalEntry{
		Date:            date(2025, 4, 1),
		DebitAccountID:  1,
		DebitAmount:     50000,
		CreditAccountID: 2,
		CreditAmount:    50000,
		Description:     "売上入金",
	}
}

func hasRule(errs []ValidationError, rule error) bool {
	for _, e := range errs {
		if e.Rule == rule {
			return true
		}
	}
	return false
}

func TestValidate_Balanced(t *testing.T) {
	errs := ValidateEntry(validEntry(), defaultAccounts)
	assert.Empty(t, errs)
	assert.NoError(t, Check(validEntry(), defaultAccounts))
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.JournalEntry)
		rule   error
	}{
		{"unknown debit", func(e *model.JournalEntry) { e.DebitAccountID = 99 }, model.ErrMissingAccount},
		{"unknown credit", func(e *model.JournalEntry) { e.CreditAccountID = 99 }, model.ErrMissingAccount},
		{"same account", func(e *model.JournalEntry) { e.CreditAccountID = 1 }, model.ErrSameAccount},
		{"unbalanced", func(e *model.JournalEntry) { e.CreditAmount = 49999 }, model.ErrUnbalancedAmount},
		{"zero amount", func(e *model.JournalEntry) { e.DebitAmount, e.CreditAmount = 0, 0 }, model.ErrNonPositiveAmount},
		{"negative amount", func(e *model.JournalEntry) { e.DebitAmount, e.CreditAmount = -5, -5 }, model.ErrNonPositiveAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			errs := ValidateEntry(e, defaultAccounts)
			require.NotEmpty(t, errs)
			assert.True(t, hasRule(errs, tt.rule), "expected %v in %v", tt.rule, errs)
			assert.ErrorIs(t, Check(e, defaultAccounts), tt.rule)
		})
	}
}

func TestValidate_ZeroDate(t *testing.T) {
	e := validEntry()
	e.Date = time.Time{}
	errs := ValidateEntry(e, defaultAccounts)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], model.ErrInvalidDate)
}

func TestValidate_MultipleViolations(t *testing.T) {
	e := validEntry()
	e.CreditAccountID = e.DebitAccountID
	e.CreditAmount = 0

	err := Check(e, defaultAccounts)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSameAccount)
	assert.ErrorIs(t, err, model.ErrUnbalancedAmount)
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)
	assert.NotErrorIs(t, err, model.ErrMissingAccount)
}

func TestValidationError_Message(t *testing.T) {
	ve := ValidationError{Rule: model.ErrSameAccount, Detail: "account 1"}
	assert.Equal(t, "debit and credit accounts are the same: account 1", ve.Error())
	assert.Equal(t, model.ErrInvalidDate.Error(), ValidationError{Rule: model.ErrInvalidDate}.Error())
}
