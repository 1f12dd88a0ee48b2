package report

import (
	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/carryforward"
	"github.com/aoiro-dev/aoiro/internal/depreciation"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/rent"
)

// Codes names the accounts broken out month by month on the statement.
type Codes struct {
	Sales     int
	Purchases int
}

// DefaultCodes returns the codes of the default chart.
func DefaultCodes() Codes {
	return Codes{Sales: accounts.SalesCode, Purchases: accounts.PurchasesCode}
}

// MonthlyRow is one month of sales and purchases.
type MonthlyRow struct {
	Month     int
	Sales     int64
	Purchases int64
}

// FinalStatement is the four-page blue-form annual statement.
type FinalStatement struct {
	Year           int
	Codes          Codes
	ProfitLoss     ProfitLoss
	Monthly        []MonthlyRow
	TotalSales     int64
	TotalPurchases int64
	GrossProfit    int64
	Depreciation   depreciation.Schedule
	Rent           rent.Allocation
	BalanceSheet   BalanceSheet
	Carryforward   carryforward.Summary
}

// NewFinalStatement assembles the annual statement for year.
func NewFinalStatement(snap model.Snapshot, year int, codes Codes) (FinalStatement, error) {
	pl, err := NewProfitLoss(snap, year)
	if err != nil {
		return FinalStatement{}, err
	}
	bs, err := NewBalanceSheet(snap, year)
	if err != nil {
		return FinalStatement{}, err
	}

	fs := FinalStatement{
		Year:         year,
		Codes:        codes,
		ProfitLoss:   pl,
		Depreciation: depreciation.Compute(snap.Assets, year),
		Rent:         rent.Allocate(snap.Rents),
		BalanceSheet: bs,
		Carryforward: carryforward.Summarize(snap.Losses, year, pl.NetIncome),
	}

	chart := accounts.NewService(snap.Accounts)
	sales, hasSales := chart.ByCode(codes.Sales)
	purchases, hasPurchases := chart.ByCode(codes.Purchases)
	for m := 1; m <= 12; m++ {
		ledger := Aggregate(snap.Entries, model.Month(year, m))
		row := MonthlyRow{Month: m}
		if hasSales {
			row.Sales = ledger[sales.ID].Credit
		}
		if hasPurchases {
			row.Purchases = ledger[purchases.ID].Debit
		}
		fs.Monthly = append(fs.Monthly, row)
		fs.TotalSales += row.Sales
		fs.TotalPurchases += row.Purchases
	}

	fs.GrossProfit = pl.TotalRevenue - pl.Amount(codes.Purchases)
	return fs, nil
}
