package report

import (
	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/model"
)

// TrialRow is one account line of the trial balance.
type TrialRow struct {
	AccountID      int64
	Code           int
	Name           string
	Classification model.Classification
	Debit          int64
	Credit         int64
	Balance        int64
}

// TrialBalance lists the period activity of every account that moved.
type TrialBalance struct {
	Period      model.Period
	Rows        []TrialRow
	DebitTotal  int64
	CreditTotal int64
}

// Balanced reports whether the debit and credit grand totals agree.
func (tb TrialBalance) Balanced() bool {
	return tb.DebitTotal == tb.CreditTotal
}

// Difference is debit minus credit grand totals.
func (tb TrialBalance) Difference() int64 {
	return tb.DebitTotal - tb.CreditTotal
}

// NewTrialBalance builds the trial balance for p. Rows are ordered by code.
func NewTrialBalance(snap model.Snapshot, p model.Period) (TrialBalance, error) {
	if err := p.Validate(); err != nil {
		return TrialBalance{}, err
	}
	ledger := Aggregate(snap.Entries, p)
	tb := TrialBalance{Period: p}
	for _, acct := range accounts.NewService(snap.Accounts).All() {
		t := ledger[acct.ID]
		if !t.Active() {
			continue
		}
		tb.Rows = append(tb.Rows, TrialRow{
			AccountID:      acct.ID,
			Code:           acct.Code,
			Name:           acct.Name,
			Classification: acct.Classification,
			Debit:          t.Debit,
			Credit:         t.Credit,
			Balance:        ledger.Balance(acct),
		})
		tb.DebitTotal += t.Debit
		tb.CreditTotal += t.Credit
	}
	return tb, nil
}
