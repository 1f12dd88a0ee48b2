package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/carryforward"
	"github.com/aoiro-dev/aoiro/internal/depreciation"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/render"
	"github.com/aoiro-dev/aoiro/internal/rent"
	"github.com/aoiro-dev/aoiro/internal/report"
)

func newReportCommand(opts *options) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Financial statements",
	}
	reportCmd.AddCommand(
		newReportTrialCommand(opts),
		newReportPLCommand(opts),
		newReportBSCommand(opts),
		newReportFinalCommand(opts),
	)
	return reportCmd
}

func newReportTrialCommand(opts *options) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Trial balance (試算表)",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			tb, err := s.books.TrialBalance(cmd.Context(), model.Month(year, month))
			if err != nil {
				return err
			}
			return writeTrialBalance(cmd.OutOrStdout(), tb)
		}),
	}

	periodFlags(cmd, &year, &month)
	return cmd
}

func writeTrialBalance(w io.Writer, tb report.TrialBalance) error {
	render.Title(w, "試算表 %s", tb.Period)
	tbl := render.NewTable([]string{"コード", "科目", "借方", "貸方", "残高"},
		render.Left, render.Left, render.Right, render.Right, render.Right)
	for _, r := range tb.Rows {
		tbl.Add(strconv.Itoa(r.Code), r.Name, render.Amount(r.Debit), render.Amount(r.Credit), render.Amount(r.Balance))
	}
	tbl.Footer("", "合計", render.Amount(tb.DebitTotal), render.Amount(tb.CreditTotal))
	if err := tbl.Write(w); err != nil {
		return err
	}
	if !tb.Balanced() {
		render.Warn(w, "借方と貸方が一致しません (差額 %s)", render.Amount(tb.Difference()))
	}
	return nil
}

func newReportPLCommand(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "pl",
		Short: "Profit and loss statement (損益計算書)",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			pl, err := s.books.ProfitLoss(cmd.Context(), year)
			if err != nil {
				return err
			}
			return writeProfitLoss(cmd.OutOrStdout(), pl)
		}),
	}

	yearFlag(cmd, &year)
	return cmd
}

func writeProfitLoss(w io.Writer, pl report.ProfitLoss) error {
	render.Title(w, "損益計算書 %d年", pl.Year)
	tbl := render.NewTable([]string{"コード", "科目", "金額"}, render.Left, render.Left, render.Right)
	addLines(tbl, pl.Revenues)
	tbl.Add("", "収益合計", render.Amount(pl.TotalRevenue))
	addLines(tbl, pl.Expenses)
	tbl.Add("", "費用合計", render.Amount(pl.TotalExpense))
	tbl.Footer("", "所得金額", render.Amount(pl.NetIncome))
	return tbl.Write(w)
}

func addLines(tbl *render.Table, lines []report.Line) {
	for _, l := range lines {
		tbl.Add(strconv.Itoa(l.Code), l.Name, render.Amount(l.Amount))
	}
}

func newReportBSCommand(opts *options) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "bs",
		Short: "Balance sheet (貸借対照表)",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			bs, err := s.books.BalanceSheet(cmd.Context(), year)
			if err != nil {
				return err
			}
			return writeBalanceSheet(cmd.OutOrStdout(), bs)
		}),
	}

	yearFlag(cmd, &year)
	return cmd
}

func writeBalanceSheet(w io.Writer, bs report.BalanceSheet) error {
	render.Title(w, "貸借対照表 %d年12月31日", bs.Year)
	tbl := render.NewTable([]string{"コード", "科目", "金額"}, render.Left, render.Left, render.Right)
	addLines(tbl, bs.Assets)
	tbl.Add("", "資産合計", render.Amount(bs.TotalAssets))
	addLines(tbl, bs.Liabilities)
	tbl.Add("", "負債合計", render.Amount(bs.TotalLiabilities))
	addLines(tbl, bs.Equity)
	tbl.Add("", "前年までの所得", render.Amount(bs.PriorEarnings))
	tbl.Add("", "青色申告特別控除前の所得金額", render.Amount(bs.NetIncome))
	tbl.Footer("", "負債・資本合計", render.Amount(bs.TotalLiabilities+bs.TotalEquity+bs.PriorEarnings+bs.NetIncome))
	if err := tbl.Write(w); err != nil {
		return err
	}
	if !bs.Balanced() {
		render.Warn(w, "貸借が一致しません (差額 %s)", render.Amount(bs.Difference()))
	}
	return nil
}

func newReportFinalCommand(opts *options) *cobra.Command {
	var year int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "final",
		Short: "Annual blue-form statement (青色申告決算書)",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			fs, err := s.books.FinalStatement(cmd.Context(), year)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(fs)
			}
			return writeFinalStatement(w, fs)
		}),
	}

	yearFlag(cmd, &year)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func writeFinalStatement(w io.Writer, fs report.FinalStatement) error {
	if err := writeProfitLoss(w, fs.ProfitLoss); err != nil {
		return err
	}
	fmt.Fprintln(w)

	render.Title(w, "月別売上(収入)金額及び仕入金額")
	monthly := render.NewTable([]string{"月", "売上", "仕入"}, render.Right, render.Right, render.Right)
	for _, m := range fs.Monthly {
		monthly.Add(strconv.Itoa(m.Month)+"月", render.Amount(m.Sales), render.Amount(m.Purchases))
	}
	monthly.Footer("計", render.Amount(fs.TotalSales), render.Amount(fs.TotalPurchases))
	if err := monthly.Write(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "差引金額 %s\n\n", render.Yen(fs.GrossProfit))

	if err := writeSchedule(w, fs.Depreciation); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := writeRent(w, fs.Rent); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := writeBalanceSheet(w, fs.BalanceSheet); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return writeCarryforward(w, fs.Carryforward)
}

func writeSchedule(w io.Writer, sched depreciation.Schedule) error {
	render.Title(w, "減価償却費の計算 %d年", sched.Year)
	tbl := render.NewTable([]string{"資産", "取得日", "取得価額", "償却率", "月数", "本年分", "期末残高"},
		render.Left, render.Left, render.Right, render.Right, render.Right, render.Right, render.Right)
	for _, r := range sched.Rows {
		tbl.Add(r.Name, r.AcquisitionDate, render.Amount(r.AcquisitionCost), model.FormatRate(r.Rate),
			strconv.Itoa(r.MonthsUsed)+"/12", render.Amount(r.CurrentYearDep), render.Amount(r.BookValueEnd))
	}
	tbl.Footer("計", "", "", "", "", render.Amount(sched.Total))
	return tbl.Write(w)
}

func writeRent(w io.Writer, a rent.Allocation) error {
	render.Title(w, "地代家賃の内訳")
	tbl := render.NewTable([]string{"支払先", "賃借物件", "年額", "事業割合", "必要経費算入額"},
		render.Left, render.Left, render.Right, render.Right, render.Right)
	for _, r := range a.Rows {
		tbl.Add(r.PayeeName, r.RentType, render.Amount(r.AnnualTotal), strconv.Itoa(r.BusinessRatio)+"%", render.Amount(r.Deductible))
	}
	tbl.Footer("計", "", "", "", render.Amount(a.Total))
	return tbl.Write(w)
}

func writeCarryforward(w io.Writer, s carryforward.Summary) error {
	render.Title(w, "純損失の繰越控除 %d年", s.Year)
	tbl := render.NewTable([]string{"損失年", "損失額", "控除済", "本年控除", "残額"},
		render.Right, render.Right, render.Right, render.Right, render.Right)
	for _, r := range s.Rows {
		tbl.Add(strconv.Itoa(r.LossYear), render.Amount(r.OriginalLoss), render.Amount(r.AlreadyUsed),
			render.Amount(r.AppliedThisYear), render.Amount(r.Remaining))
	}
	tbl.Footer("計", "", "", render.Amount(s.TotalApplied))
	if err := tbl.Write(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "控除前所得 %s / 控除後所得 %s\n", render.Yen(s.IncomeBefore), render.Yen(s.IncomeAfter))
	return nil
}
