package books

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/journal"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/store"
)

// AddEntry records a journal entry and returns its id. The entry is
// validated against the chart before anything is written.
func (s *Service) AddEntry(ctx context.Context, e model.JournalEntry) (int64, error) {
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		chart, err := s.chart(ctx, tx)
		if err != nil {
			return err
		}
		if err := journal.Check(e, chart); err != nil {
			return err
		}
		e.CreatedAt = s.now()
		e.ID, err = tx.InsertEntry(ctx, e)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.log.WithFields(entryFields(e)).Info("entry added")
	return e.ID, nil
}

// UpdateEntry replaces an existing entry. The same rules as AddEntry apply.
func (s *Service) UpdateEntry(ctx context.Context, e model.JournalEntry) error {
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		if _, err := tx.Entry(ctx, e.ID); err != nil {
			return err
		}
		chart, err := s.chart(ctx, tx)
		if err != nil {
			return err
		}
		if err := journal.Check(e, chart); err != nil {
			return err
		}
		return tx.UpdateEntry(ctx, e)
	})
	if err != nil {
		return err
	}
	s.log.WithFields(entryFields(e)).Info("entry updated")
	return nil
}

// DeleteEntry removes an entry.
func (s *Service) DeleteEntry(ctx context.Context, id int64) error {
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		return tx.DeleteEntry(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.WithField("entry_id", id).Info("entry deleted")
	return nil
}

// ListEntries returns the entries in p ordered by date, then id. The
// sequence reads from one snapshot and can be ranged over repeatedly.
func (s *Service) ListEntries(ctx context.Context, p model.Period) (iter.Seq[model.JournalEntry], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var entries []model.JournalEntry
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		entries, err = tx.Entries(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return journal.Entries(entries, p), nil
}

// ExportEntries writes the entries in p as a journal CSV.
func (s *Service) ExportEntries(ctx context.Context, w io.Writer, p model.Period) error {
	if err := p.Validate(); err != nil {
		return err
	}
	var (
		entries []model.JournalEntry
		chart   *accounts.Service
	)
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		if chart, err = s.chart(ctx, tx); err != nil {
			return err
		}
		entries, err = tx.Entries(ctx, p)
		return err
	})
	if err != nil {
		return err
	}
	return journal.WriteEntries(w, entries, chart)
}

// ImportEntries records every row of a journal CSV. Accounts are matched by
// code. Either every row is recorded or none is.
func (s *Service) ImportEntries(ctx context.Context, r io.Reader) (int, error) {
	rows, err := journal.ReadRows(r)
	if err != nil {
		return 0, err
	}
	err = s.db.Transaction(ctx, func(tx *store.Tx) error {
		chart, err := s.chart(ctx, tx)
		if err != nil {
			return err
		}
		now := s.now()
		for i, row := range rows {
			e, err := resolveRow(row, chart)
			if err == nil {
				err = journal.Check(e, chart)
			}
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			e.CreatedAt = now
			if _, err := tx.InsertEntry(ctx, e); err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.log.WithField("count", len(rows)).Info("entries imported")
	return len(rows), nil
}

func resolveRow(row journal.Row, chart *accounts.Service) (model.JournalEntry, error) {
	debit, ok := chart.ByCode(row.DebitCode)
	if !ok {
		return model.JournalEntry{}, fmt.Errorf("%w: debit code %d", model.ErrMissingAccount, row.DebitCode)
	}
	credit, ok := chart.ByCode(row.CreditCode)
	if !ok {
		return model.JournalEntry{}, fmt.Errorf("%w: credit code %d", model.ErrMissingAccount, row.CreditCode)
	}
	return model.JournalEntry{
		Date:            row.Date,
		DebitAccountID:  debit.ID,
		DebitAmount:     row.DebitAmount,
		CreditAccountID: credit.ID,
		CreditAmount:    row.CreditAmount,
		Description:     row.Description,
	}, nil
}

func (s *Service) chart(ctx context.Context, tx *store.Tx) (*accounts.Service, error) {
	list, err := tx.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	return accounts.NewService(list), nil
}

func entryFields(e model.JournalEntry) logrus.Fields {
	return logrus.Fields{
		"entry_id":  e.ID,
		"date":      e.Date.Format(model.DateFormat),
		"debit_id":  e.DebitAccountID,
		"credit_id": e.CreditAccountID,
		"amount":    e.DebitAmount,
	}
}
