package books

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/report"
	"github.com/aoiro-dev/aoiro/internal/store"
)

type fixture struct {
	svc  *Service
	hook *logtest.Hook
	ctx  context.Context
	dir  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	db, err := store.Open(filepath.Join(dir, "books.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, hook := logtest.NewNullLogger()
	svc := NewService(db, log, report.Codes{})
	svc.now = func() time.Time { return time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC) }
	return &fixture{svc: svc, hook: hook, ctx: context.Background(), dir: dir}
}

func (f *fixture) account(t *testing.T, code int, name string, class model.Classification) int64 {
	t.Helper()
	a, err := f.svc.AddAccount(f.ctx, code, name, class)
	require.NoError(t, err)
	return a.ID
}

func (f *fixture) entry(t *testing.T, date string, debit, credit, amount int64) int64 {
	t.Helper()
	d, err := time.Parse(model.DateFormat, date)
	require.NoError(t, err)
	id, err := f.svc.AddEntry(f.ctx, model.JournalEntry{
		Date: d, DebitAccountID: debit, DebitAmount: amount,
		CreditAccountID: credit, CreditAmount: amount,
	})
	require.NoError(t, err)
	return id
}

func TestAddAccount_Validation(t *testing.T) {
	f := newFixture(t)
	f.account(t, 1112, "普通預金", model.Asset)

	_, err := f.svc.AddAccount(f.ctx, 1112, "dup", model.Asset)
	assert.ErrorIs(t, err, model.ErrDuplicateCode)
	_, err = f.svc.AddAccount(f.ctx, 0, "zero", model.Asset)
	assert.ErrorIs(t, err, model.ErrInvalidCode)
	_, err = f.svc.AddAccount(f.ctx, 1113, "  ", model.Asset)
	assert.ErrorIs(t, err, model.ErrInvalidName)

	chart, err := f.svc.ListAccounts(f.ctx)
	require.NoError(t, err)
	assert.Len(t, chart, 1)
}

func TestImportAccounts_AllOrNothing(t *testing.T) {
	f := newFixture(t)

	csv := "code,name,classification\n1111,現金,asset\n4100,売上高,revenue\n1111,dup,asset\n"
	_, err := f.svc.ImportAccounts(f.ctx, strings.NewReader(csv))
	assert.ErrorIs(t, err, model.ErrDuplicateCode)
	chart, err := f.svc.ListAccounts(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, chart)

	var buf bytes.Buffer
	require.NoError(t, accounts.WriteAccounts(&buf, accounts.DefaultChart()))
	n, err := f.svc.ImportAccounts(f.ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, len(accounts.DefaultChart()), n)

	var out bytes.Buffer
	require.NoError(t, f.svc.ExportAccounts(f.ctx, &out))
	assert.Contains(t, out.String(), "4100,売上高,revenue")
}

func TestAddEntry_ScenarioReports(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, 1112, "普通預金", model.Asset)
	sales := f.account(t, 4100, "売上高", model.Revenue)
	f.entry(t, "2025-04-01", bank, sales, 50000)

	pl, err := f.svc.ProfitLoss(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), pl.TotalRevenue)
	assert.Equal(t, int64(50000), pl.NetIncome)

	bs, err := f.svc.BalanceSheet(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), bs.TotalAssets)
	assert.True(t, bs.Balanced())

	again, err := f.svc.BalanceSheet(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, bs, again)

	tb, err := f.svc.TrialBalance(f.ctx, model.Year(2025))
	require.NoError(t, err)
	assert.True(t, tb.Balanced())
	assert.Equal(t, int64(50000), tb.DebitTotal)

	for _, e := range f.hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, e.Level, e.Message)
	}
}

func TestAddEntry_RejectedBeforeWrite(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, 1112, "普通預金", model.Asset)
	sales := f.account(t, 4100, "売上高", model.Revenue)
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		entry model.JournalEntry
		want  error
	}{
		{"no date", model.JournalEntry{DebitAccountID: bank, DebitAmount: 1, CreditAccountID: sales, CreditAmount: 1}, model.ErrInvalidDate},
		{"missing account", model.JournalEntry{Date: d, DebitAccountID: 99, DebitAmount: 1, CreditAccountID: sales, CreditAmount: 1}, model.ErrMissingAccount},
		{"same account", model.JournalEntry{Date: d, DebitAccountID: bank, DebitAmount: 1, CreditAccountID: bank, CreditAmount: 1}, model.ErrSameAccount},
		{"unbalanced", model.JournalEntry{Date: d, DebitAccountID: bank, DebitAmount: 2, CreditAccountID: sales, CreditAmount: 1}, model.ErrUnbalancedAmount},
		{"zero", model.JournalEntry{Date: d, DebitAccountID: bank, CreditAccountID: sales}, model.ErrNonPositiveAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.AddEntry(f.ctx, tc.entry)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	seq, err := f.svc.ListEntries(f.ctx, model.Year(2025))
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestUpdateDeleteAndList(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, 1112, "普通預金", model.Asset)
	sales := f.account(t, 4100, "売上高", model.Revenue)
	first := f.entry(t, "2025-03-01", bank, sales, 1000)
	second := f.entry(t, "2025-02-01", bank, sales, 2000)
	third := f.entry(t, "2025-03-01", bank, sales, 3000)

	seq, err := f.svc.ListEntries(f.ctx, model.Year(2025))
	require.NoError(t, err)
	var ids []int64
	for e := range seq {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int64{second, first, third}, ids)
	assert.Len(t, slices.Collect(seq), 3, "sequence can be ranged again")

	err = f.svc.UpdateEntry(f.ctx, model.JournalEntry{
		ID: first, Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DebitAccountID: bank, DebitAmount: 1500, CreditAccountID: sales, CreditAmount: 1500,
	})
	require.NoError(t, err)

	err = f.svc.UpdateEntry(f.ctx, model.JournalEntry{ID: 999, Date: time.Now(), DebitAccountID: bank, DebitAmount: 1, CreditAccountID: sales, CreditAmount: 1})
	assert.ErrorIs(t, err, model.ErrNotFound)
	err = f.svc.UpdateEntry(f.ctx, model.JournalEntry{ID: first, Date: time.Now(), DebitAccountID: bank, DebitAmount: 1, CreditAccountID: sales, CreditAmount: 2})
	assert.ErrorIs(t, err, model.ErrUnbalancedAmount)

	require.NoError(t, f.svc.DeleteEntry(f.ctx, second))
	assert.ErrorIs(t, f.svc.DeleteEntry(f.ctx, second), model.ErrNotFound)

	march, err := f.svc.ListEntries(f.ctx, model.Month(2025, 3))
	require.NoError(t, err)
	var amounts []int64
	for e := range march {
		amounts = append(amounts, e.Amount())
	}
	assert.Equal(t, []int64{1500, 3000}, amounts)

	_, err = f.svc.ListEntries(f.ctx, model.Month(2025, 13))
	assert.ErrorIs(t, err, model.ErrInvalidPeriod)
}

func TestImportExportEntries(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, 1112, "普通預金", model.Asset)
	sales := f.account(t, 4100, "売上高", model.Revenue)
	f.entry(t, "2025-01-10", bank, sales, 12345)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportEntries(f.ctx, &buf, model.Year(2025)))
	assert.True(t, strings.HasPrefix(buf.String(), "\ufeff"))

	n, err := f.svc.ImportEntries(f.ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pl, err := f.svc.ProfitLoss(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(24690), pl.TotalRevenue)

	bad := "日付,借方コード,借方科目,借方金額,貸方コード,貸方科目,貸方金額,摘要\n" +
		"2025-02-01,1112,普通預金,100,4100,売上高,100,ok\n" +
		"2025-02-02,9999,?,100,4100,売上高,100,bad\n"
	_, err = f.svc.ImportEntries(f.ctx, strings.NewReader(bad))
	assert.ErrorIs(t, err, model.ErrMissingAccount)

	pl, err = f.svc.ProfitLoss(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(24690), pl.TotalRevenue, "failed import writes nothing")
}

func TestFixedAssets(t *testing.T) {
	f := newFixture(t)
	asset, err := f.svc.AddFixedAsset(f.ctx, model.FixedAsset{
		Name: "PC", AcquisitionDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		AcquisitionCost: 1_200_000, UsefulLife: 5, Rate: 2000, Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StraightLine, asset.Method)

	_, err = f.svc.AddFixedAsset(f.ctx, model.FixedAsset{Name: "bad", AcquisitionDate: time.Now(), UsefulLife: 5})
	assert.ErrorIs(t, err, model.ErrInvalidAsset)

	sched, err := f.svc.Depreciation(f.ctx, 2025)
	require.NoError(t, err)
	require.Len(t, sched.Rows, 1)
	assert.Equal(t, int64(240000), sched.Rows[0].AnnualDep)
	assert.Equal(t, 6, sched.Rows[0].MonthsUsed)
	assert.Equal(t, int64(120000), sched.Total)

	list, err := f.svc.ListFixedAssets(f.ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.svc.DeleteFixedAsset(f.ctx, asset.ID))
	assert.ErrorIs(t, f.svc.DeleteFixedAsset(f.ctx, asset.ID), model.ErrNotFound)
}

func TestRentDetails(t *testing.T) {
	f := newFixture(t)
	r, err := f.svc.AddRentDetail(f.ctx, model.RentDetail{PayeeName: "大家", MonthlyRent: 100000, BusinessRatio: 60})
	require.NoError(t, err)
	assert.Equal(t, int64(1_200_000), r.AnnualTotal)

	_, err = f.svc.AddRentDetail(f.ctx, model.RentDetail{PayeeName: "大家", MonthlyRent: 1, BusinessRatio: 0})
	assert.ErrorIs(t, err, model.ErrInvalidRent)

	list, err := f.svc.ListRentDetails(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.svc.DeleteRentDetail(f.ctx, r.ID))
	list, err = f.svc.ListRentDetails(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLossCarryforward_CommitIsIdempotent(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, 1112, "普通預金", model.Asset)
	sales := f.account(t, 4100, "売上高", model.Revenue)
	f.entry(t, "2025-05-01", bank, sales, 200000)

	loss, err := f.svc.AddLossCarryforward(f.ctx, model.LossCarryforward{LossYear: 2023, LossAmount: 300000})
	require.NoError(t, err)
	_, err = f.svc.AddLossCarryforward(f.ctx, model.LossCarryforward{LossYear: 2023, LossAmount: 0})
	assert.ErrorIs(t, err, model.ErrInvalidLoss)

	preview, err := f.svc.Summarize(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), preview.TotalApplied)
	assert.Zero(t, preview.IncomeAfter)

	list, err := f.svc.ListLossCarryforwards(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, list[0].Used(), "summarize writes nothing")

	for range 2 {
		sum, err := f.svc.CommitCarryforward(f.ctx, 2025)
		require.NoError(t, err)
		assert.Equal(t, preview, sum)

		list, err = f.svc.ListLossCarryforwards(f.ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(200000), list[0].UsedYear2)
		assert.Equal(t, int64(200000), list[0].Used())
	}

	l, err := f.svc.SetLossUsage(f.ctx, loss.ID, 50000, 200000, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(250000), l.Used())
	_, err = f.svc.SetLossUsage(f.ctx, loss.ID, 200000, 200000, 0)
	assert.ErrorIs(t, err, model.ErrInvalidLoss)
	_, err = f.svc.SetLossUsage(f.ctx, 999, 0, 0, 0)
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, f.svc.DeleteLossCarryforward(f.ctx, loss.ID))
	list, err = f.svc.ListLossCarryforwards(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCommitCarryforward_LossYearClearsSlot(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, 1112, "普通預金", model.Asset)
	misc := f.account(t, 5990, "雑費", model.Expense)
	f.entry(t, "2025-05-01", misc, bank, 1000)

	loss, err := f.svc.AddLossCarryforward(f.ctx, model.LossCarryforward{LossYear: 2024, LossAmount: 5000})
	require.NoError(t, err)
	_, err = f.svc.SetLossUsage(f.ctx, loss.ID, 3000, 0, 0)
	require.NoError(t, err)

	sum, err := f.svc.CommitCarryforward(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), sum.IncomeBefore)
	assert.Zero(t, sum.TotalApplied)

	list, err := f.svc.ListLossCarryforwards(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, list[0].UsedYear1)
}

func TestFinalStatement_UsesConfiguredCodes(t *testing.T) {
	f := newFixture(t)
	bank := f.account(t, 1112, "普通預金", model.Asset)
	sales := f.account(t, 4100, "売上高", model.Revenue)
	buy := f.account(t, 5100, "仕入高", model.Expense)
	f.entry(t, "2025-01-20", bank, sales, 90000)
	f.entry(t, "2025-03-20", buy, bank, 40000)

	fs, err := f.svc.FinalStatement(f.ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), fs.Monthly[0].Sales)
	assert.Equal(t, int64(40000), fs.Monthly[2].Purchases)
	assert.Equal(t, int64(50000), fs.GrossProfit)
	assert.True(t, fs.BalanceSheet.Balanced())
}

func TestBackup(t *testing.T) {
	f := newFixture(t)
	f.account(t, 1112, "普通預金", model.Asset)

	path, err := f.svc.Backup(f.ctx, filepath.Join(f.dir, "backups"))
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, "books-20251015-090000.db", filepath.Base(path))
}
