// Package books is the bookkeeping facade: every operation on the books
// goes through a Service, which validates input and runs each write in a
// single transaction.
package books

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aoiro-dev/aoiro/internal/accounts"
	"github.com/aoiro-dev/aoiro/internal/report"
	"github.com/aoiro-dev/aoiro/internal/store"
)

// Service operates on one book database.
type Service struct {
	db    *store.DB
	log   *logrus.Logger
	codes report.Codes
	now   func() time.Time
}

// NewService creates a Service. codes selects the sales and purchases
// accounts broken out on the annual statement.
func NewService(db *store.DB, log *logrus.Logger, codes report.Codes) *Service {
	if codes.Sales == 0 {
		codes.Sales = accounts.SalesCode
	}
	if codes.Purchases == 0 {
		codes.Purchases = accounts.PurchasesCode
	}
	return &Service{db: db, log: log, codes: codes, now: time.Now}
}

// Backup copies the database into dir and returns the new file's path.
func (s *Service) Backup(ctx context.Context, dir string) (string, error) {
	path, err := s.db.Backup(ctx, dir, s.now())
	if err != nil {
		return "", err
	}
	s.log.WithField("path", path).Info("backup written")
	return path, nil
}
