// Package report derives the trial balance, profit and loss, balance sheet
// and annual statement from one snapshot of the books.
package report

import (
	"iter"

	"github.com/aoiro-dev/aoiro/internal/journal"
	"github.com/aoiro-dev/aoiro/internal/model"
)

// Totals is the unsigned activity of one account.
type Totals struct {
	Debit  int64
	Credit int64
}

// Active reports whether anything was posted.
func (t Totals) Active() bool {
	return t.Debit != 0 || t.Credit != 0
}

// Ledger maps account ids to their totals.
type Ledger map[int64]Totals

// Sum folds entries into per-account totals.
func Sum(entries iter.Seq[model.JournalEntry]) Ledger {
	l := Ledger{}
	for e := range entries {
		d := l[e.DebitAccountID]
		d.Debit += e.DebitAmount
		l[e.DebitAccountID] = d

		c := l[e.CreditAccountID]
		c.Credit += e.CreditAmount
		l[e.CreditAccountID] = c
	}
	return l
}

// Aggregate totals the entries dated within p.
func Aggregate(entries []model.JournalEntry, p model.Period) Ledger {
	return Sum(journal.Entries(entries, p))
}

// AggregateThrough totals every entry from the start of the books through
// the end of year.
func AggregateThrough(entries []model.JournalEntry, year int) Ledger {
	return Sum(journal.Through(entries, year))
}

// Balance returns the signed balance of acct.
func (l Ledger) Balance(acct model.Account) int64 {
	t := l[acct.ID]
	return acct.Classification.Balance(t.Debit, t.Credit)
}
