package report

import (
	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/journal"
	"github.com/aoiro-dev/aoiro/internal/model"
)

// BalanceSheet is the position at the end of a year. Asset, liability and
// equity balances are cumulative from the first entry. The books carry no
// closing entries, so income of earlier years is shown as PriorEarnings.
type BalanceSheet struct {
	Year             int
	Assets           []Line
	Liabilities      []Line
	Equity           []Line
	TotalAssets      int64
	TotalLiabilities int64
	TotalEquity      int64
	PriorEarnings    int64
	NetIncome        int64
}

// Balanced reports whether assets equal liabilities plus equity plus
// retained income.
func (bs BalanceSheet) Balanced() bool {
	return bs.Difference() == 0
}

// Difference is assets minus the other side.
func (bs BalanceSheet) Difference() int64 {
	return bs.TotalAssets - (bs.TotalLiabilities + bs.TotalEquity + bs.PriorEarnings + bs.NetIncome)
}

// NewBalanceSheet builds the balance sheet as of December 31 of year.
func NewBalanceSheet(snap model.Snapshot, year int) (BalanceSheet, error) {
	if err := model.Year(year).Validate(); err != nil {
		return BalanceSheet{}, err
	}
	chart := accounts.NewService(snap.Accounts)
	cumulative := AggregateThrough(snap.Entries, year)

	bs := BalanceSheet{Year: year}
	bs.Assets, bs.TotalAssets = lines(chart.ByClassification(model.Asset), cumulative)
	bs.Liabilities, bs.TotalLiabilities = lines(chart.ByClassification(model.Liability), cumulative)
	bs.Equity, bs.TotalEquity = lines(chart.ByClassification(model.Equity), cumulative)

	bs.NetIncome = profitLoss(chart, Aggregate(snap.Entries, model.Year(year))).NetIncome
	bs.PriorEarnings = profitLoss(chart, Sum(journal.Through(snap.Entries, year-1))).NetIncome
	return bs, nil
}
