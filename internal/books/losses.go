package books

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aoiro-dev/aoiro/internal/carryforward"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/report"
	"github.com/aoiro-dev/aoiro/internal/store"
)

// AddLossCarryforward records a net loss to carry into later years.
func (s *Service) AddLossCarryforward(ctx context.Context, l model.LossCarryforward) (model.LossCarryforward, error) {
	if err := carryforward.Validate(l); err != nil {
		return model.LossCarryforward{}, err
	}
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		l.ID, err = tx.InsertLossCarryforward(ctx, l)
		return err
	})
	if err != nil {
		return model.LossCarryforward{}, err
	}
	s.log.WithFields(logrus.Fields{"loss_id": l.ID, "loss_year": l.LossYear}).Info("loss carryforward added")
	return l, nil
}

// DeleteLossCarryforward removes a loss record.
func (s *Service) DeleteLossCarryforward(ctx context.Context, id int64) error {
	if err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		return tx.DeleteLossCarryforward(ctx, id)
	}); err != nil {
		return err
	}
	s.log.WithField("loss_id", id).Info("loss carryforward deleted")
	return nil
}

// ListLossCarryforwards returns the loss records ordered by loss year.
func (s *Service) ListLossCarryforwards(ctx context.Context) ([]model.LossCarryforward, error) {
	var out []model.LossCarryforward
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		out, err = tx.LossCarryforwards(ctx)
		return err
	})
	return out, err
}

// SetLossUsage overwrites the three usage slots of a record by hand.
func (s *Service) SetLossUsage(ctx context.Context, id int64, used1, used2, used3 int64) (model.LossCarryforward, error) {
	var l model.LossCarryforward
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		if l, err = tx.LossCarryforward(ctx, id); err != nil {
			return err
		}
		l.UsedYear1, l.UsedYear2, l.UsedYear3 = used1, used2, used3
		if err := carryforward.ValidateUsage(l); err != nil {
			return err
		}
		return tx.UpdateLossUsage(ctx, l)
	})
	if err != nil {
		return model.LossCarryforward{}, err
	}
	s.log.WithField("loss_id", id).Info("loss usage set")
	return l, nil
}

// Summarize simulates the loss deduction for year against that year's net
// income. Nothing is written.
func (s *Service) Summarize(ctx context.Context, year int) (carryforward.Summary, error) {
	snap, err := s.db.Snapshot(ctx)
	if err != nil {
		return carryforward.Summary{}, err
	}
	return summarize(snap, year)
}

// CommitCarryforward stores the simulated deduction for year in the usage
// slots. Slots are overwritten, so committing the same year twice leaves
// the records unchanged.
func (s *Service) CommitCarryforward(ctx context.Context, year int) (carryforward.Summary, error) {
	var sum carryforward.Summary
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var (
			snap model.Snapshot
			err  error
		)
		if snap.Accounts, err = tx.Accounts(ctx); err != nil {
			return err
		}
		if snap.Entries, err = tx.Entries(ctx, model.Year(year)); err != nil {
			return err
		}
		if snap.Losses, err = tx.LossCarryforwards(ctx); err != nil {
			return err
		}
		if sum, err = summarize(snap, year); err != nil {
			return err
		}

		writes := carryforward.Usage(snap.Losses, sum)
		if sum.IncomeBefore <= 0 {
			writes = carryforward.Clear(snap.Losses, year)
		}
		for _, l := range writes {
			if err := tx.UpdateLossUsage(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return carryforward.Summary{}, err
	}
	s.log.WithFields(logrus.Fields{"year": year, "applied": sum.TotalApplied}).Info("loss carryforward committed")
	return sum, nil
}

func summarize(snap model.Snapshot, year int) (carryforward.Summary, error) {
	pl, err := report.NewProfitLoss(snap, year)
	if err != nil {
		return carryforward.Summary{}, err
	}
	return carryforward.Summarize(snap.Losses, year, pl.NetIncome), nil
}
