package report

import (
	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/model"
)

// Line is one account and its signed amount on a statement.
type Line struct {
	AccountID int64
	Code      int
	Name      string
	Amount    int64
}

// ProfitLoss is the whole-year income statement.
type ProfitLoss struct {
	Year         int
	Revenues     []Line
	Expenses     []Line
	TotalRevenue int64
	TotalExpense int64
	NetIncome    int64
}

// Amount returns the amount booked to the account with code, or 0.
func (pl ProfitLoss) Amount(code int) int64 {
	for _, group := range [][]Line{pl.Revenues, pl.Expenses} {
		for _, l := range group {
			if l.Code == code {
				return l.Amount
			}
		}
	}
	return 0
}

// NewProfitLoss builds the income statement for year.
func NewProfitLoss(snap model.Snapshot, year int) (ProfitLoss, error) {
	if err := model.Year(year).Validate(); err != nil {
		return ProfitLoss{}, err
	}
	chart := accounts.NewService(snap.Accounts)
	pl := profitLoss(chart, Aggregate(snap.Entries, model.Year(year)))
	pl.Year = year
	return pl, nil
}

func profitLoss(chart *accounts.Service, ledger Ledger) ProfitLoss {
	var pl ProfitLoss
	pl.Revenues, pl.TotalRevenue = lines(chart.ByClassification(model.Revenue), ledger)
	pl.Expenses, pl.TotalExpense = lines(chart.ByClassification(model.Expense), ledger)
	pl.NetIncome = pl.TotalRevenue - pl.TotalExpense
	return pl
}

// lines returns a line for every account with activity, and their sum.
func lines(accts []model.Account, ledger Ledger) ([]Line, int64) {
	var out []Line
	var total int64
	for _, acct := range accts {
		if !ledger[acct.ID].Active() {
			continue
		}
		amt := ledger.Balance(acct)
		out = append(out, Line{AccountID: acct.ID, Code: acct.Code, Name: acct.Name, Amount: amt})
		total += amt
	}
	return out, total
}
