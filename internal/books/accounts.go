package books

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/store"
)

// AddAccount adds an account to the chart.
func (s *Service) AddAccount(ctx context.Context, code int, name string, class model.Classification) (model.Account, error) {
	var added model.Account
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		existing, err := tx.Accounts(ctx)
		if err != nil {
			return err
		}
		added, err = addAccount(ctx, tx, accounts.NewService(existing), model.Account{Code: code, Name: name, Classification: class})
		return err
	})
	if err != nil {
		return model.Account{}, err
	}
	s.log.WithFields(logrus.Fields{"account_code": added.Code, "account_id": added.ID}).Info("account added")
	return added, nil
}

func addAccount(ctx context.Context, tx *store.Tx, chart *accounts.Service, acct model.Account) (model.Account, error) {
	acct, err := chart.ValidateNew(acct)
	if err != nil {
		return model.Account{}, err
	}
	if acct.ID, err = tx.InsertAccount(ctx, acct); err != nil {
		return model.Account{}, err
	}
	return acct, nil
}

// ListAccounts returns the chart ordered by code.
func (s *Service) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var out []model.Account
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		out, err = tx.Accounts(ctx)
		return err
	})
	return out, err
}

// ImportAccounts adds every account in a chart CSV. Either all rows are
// added or none are.
func (s *Service) ImportAccounts(ctx context.Context, r io.Reader) (int, error) {
	incoming, err := accounts.ReadAccounts(r)
	if err != nil {
		return 0, err
	}
	return s.AddAccounts(ctx, incoming)
}

// AddAccounts adds accounts in one transaction, rejecting the whole batch
// if any of them is invalid or duplicates an existing code.
func (s *Service) AddAccounts(ctx context.Context, incoming []model.Account) (int, error) {
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		chart, err := tx.Accounts(ctx)
		if err != nil {
			return err
		}
		for _, acct := range incoming {
			added, err := addAccount(ctx, tx, accounts.NewService(chart), acct)
			if err != nil {
				return fmt.Errorf("account %d: %w", acct.Code, err)
			}
			chart = append(chart, added)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	s.log.WithField("count", len(incoming)).Info("accounts added")
	return len(incoming), nil
}

// ExportAccounts writes the chart as CSV.
func (s *Service) ExportAccounts(ctx context.Context, w io.Writer) error {
	chart, err := s.ListAccounts(ctx)
	if err != nil {
		return err
	}
	return accounts.WriteAccounts(w, chart)
}
