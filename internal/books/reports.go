package books

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/report"
)

// TrialBalance returns the trial balance for p.
func (s *Service) TrialBalance(ctx context.Context, p model.Period) (report.TrialBalance, error) {
	snap, err := s.db.Snapshot(ctx)
	if err != nil {
		return report.TrialBalance{}, err
	}
	tb, err := report.NewTrialBalance(snap, p)
	if err != nil {
		return report.TrialBalance{}, err
	}
	if !tb.Balanced() {
		s.log.WithFields(logrus.Fields{"period": p.String(), "difference": tb.Difference()}).
			Warn("trial balance does not balance")
	}
	return tb, nil
}

// ProfitLoss returns the income statement for year.
func (s *Service) ProfitLoss(ctx context.Context, year int) (report.ProfitLoss, error) {
	snap, err := s.db.Snapshot(ctx)
	if err != nil {
		return report.ProfitLoss{}, err
	}
	return report.NewProfitLoss(snap, year)
}

// BalanceSheet returns the balance sheet at the end of year.
func (s *Service) BalanceSheet(ctx context.Context, year int) (report.BalanceSheet, error) {
	snap, err := s.db.Snapshot(ctx)
	if err != nil {
		return report.BalanceSheet{}, err
	}
	bs, err := report.NewBalanceSheet(snap, year)
	if err != nil {
		return report.BalanceSheet{}, err
	}
	s.checkBalanceSheet(bs)
	return bs, nil
}

// FinalStatement returns the annual blue-form statement for year.
func (s *Service) FinalStatement(ctx context.Context, year int) (report.FinalStatement, error) {
	snap, err := s.db.Snapshot(ctx)
	if err != nil {
		return report.FinalStatement{}, err
	}
	fs, err := report.NewFinalStatement(snap, year, s.codes)
	if err != nil {
		return report.FinalStatement{}, err
	}
	s.checkBalanceSheet(fs.BalanceSheet)
	return fs, nil
}

func (s *Service) checkBalanceSheet(bs report.BalanceSheet) {
	if bs.Balanced() {
		return
	}
	s.log.WithFields(logrus.Fields{"year": bs.Year, "difference": bs.Difference()}).
		Warn("balance sheet does not balance")
}
