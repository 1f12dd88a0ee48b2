package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// FixedAssets returns the asset register ordered by acquisition date.
func (t *Tx) FixedAssets(ctx context.Context) ([]model.FixedAsset, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, name, acquisition_date, acquisition_cost, useful_life, depreciation_method,
			depreciation_rate, accumulated_dep, memo, is_active
		FROM fixed_assets ORDER BY acquisition_date, id`)
	if err != nil {
		return nil, fmt.Errorf("querying fixed assets: %w", err)
	}
	defer rows.Close()

	var out []model.FixedAsset
	for rows.Next() {
		var (
			a            model.FixedAsset
			date, method string
		)
		if err := rows.Scan(&a.ID, &a.Name, &date, &a.AcquisitionCost, &a.UsefulLife, &method,
			&a.Rate, &a.AccumulatedDep, &a.Memo, &a.Active); err != nil {
			return nil, fmt.Errorf("scanning fixed asset: %w", err)
		}
		if a.AcquisitionDate, err = time.Parse(model.DateFormat, date); err != nil {
			return nil, fmt.Errorf("fixed asset %d date: %w", a.ID, err)
		}
		if a.Method, err = model.ParseDepreciationMethod(method); err != nil {
			return nil, fmt.Errorf("fixed asset %d: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// InsertFixedAsset stores a new asset and returns its id.
func (t *Tx) InsertFixedAsset(ctx context.Context, a model.FixedAsset) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO fixed_assets (name, acquisition_date, acquisition_cost, useful_life,
			depreciation_method, depreciation_rate, accumulated_dep, memo, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Name, a.AcquisitionDate.Format(model.DateFormat), a.AcquisitionCost, a.UsefulLife,
		string(a.Method), a.Rate, a.AccumulatedDep, a.Memo, a.Active)
	if err != nil {
		return 0, fmt.Errorf("inserting fixed asset %q: %w", a.Name, err)
	}
	return res.LastInsertId()
}

// DeleteFixedAsset removes an asset.
func (t *Tx) DeleteFixedAsset(ctx context.Context, id int64) error {
	return t.deleteByID(ctx, "fixed_assets", "fixed asset", id)
}
