package books

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aoiro-dev/aoiro/internal/depreciation"
	"github.com/aoiro-dev/aoiro/internal/model"
	"github.com/aoiro-dev/aoiro/internal/rent"
	"github.com/aoiro-dev/aoiro/internal/store"
)

// AddFixedAsset registers an asset. A zero rate is replaced by the
// straight-line rate for its useful life.
func (s *Service) AddFixedAsset(ctx context.Context, a model.FixedAsset) (model.FixedAsset, error) {
	a, err := depreciation.Validate(a)
	if err != nil {
		return model.FixedAsset{}, err
	}
	err = s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		a.ID, err = tx.InsertFixedAsset(ctx, a)
		return err
	})
	if err != nil {
		return model.FixedAsset{}, err
	}
	s.log.WithFields(logrus.Fields{"asset_id": a.ID, "cost": a.AcquisitionCost}).Info("fixed asset added")
	return a, nil
}

// DeleteFixedAsset removes an asset.
func (s *Service) DeleteFixedAsset(ctx context.Context, id int64) error {
	if err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		return tx.DeleteFixedAsset(ctx, id)
	}); err != nil {
		return err
	}
	s.log.WithField("asset_id", id).Info("fixed asset deleted")
	return nil
}

// ListFixedAssets returns the asset register ordered by acquisition date.
func (s *Service) ListFixedAssets(ctx context.Context) ([]model.FixedAsset, error) {
	var out []model.FixedAsset
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		out, err = tx.FixedAssets(ctx)
		return err
	})
	return out, err
}

// Depreciation computes the schedule for year without changing any asset.
func (s *Service) Depreciation(ctx context.Context, year int) (depreciation.Schedule, error) {
	if err := model.Year(year).Validate(); err != nil {
		return depreciation.Schedule{}, err
	}
	assets, err := s.ListFixedAssets(ctx)
	if err != nil {
		return depreciation.Schedule{}, err
	}
	return depreciation.Compute(assets, year), nil
}

// AddRentDetail registers a rent contract.
func (s *Service) AddRentDetail(ctx context.Context, r model.RentDetail) (model.RentDetail, error) {
	r, err := rent.Validate(r)
	if err != nil {
		return model.RentDetail{}, err
	}
	err = s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		r.ID, err = tx.InsertRentDetail(ctx, r)
		return err
	})
	if err != nil {
		return model.RentDetail{}, err
	}
	s.log.WithFields(logrus.Fields{"rent_id": r.ID, "deductible": rent.Deductible(r)}).Info("rent detail added")
	return r, nil
}

// DeleteRentDetail removes a rent contract.
func (s *Service) DeleteRentDetail(ctx context.Context, id int64) error {
	if err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		return tx.DeleteRentDetail(ctx, id)
	}); err != nil {
		return err
	}
	s.log.WithField("rent_id", id).Info("rent detail deleted")
	return nil
}

// ListRentDetails returns the rent contracts.
func (s *Service) ListRentDetails(ctx context.Context) ([]model.RentDetail, error) {
	var out []model.RentDetail
	err := s.db.Transaction(ctx, func(tx *store.Tx) error {
		var err error
		out, err = tx.RentDetails(ctx)
		return err
	})
	return out, err
}
