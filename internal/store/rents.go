package store

import (
	"context"
	"fmt"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// RentDetails returns the rent contracts in insertion order.
func (t *Tx) RentDetails(ctx context.Context) ([]model.RentDetail, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, payee_address, payee_name, rent_type, monthly_rent, annual_total,
			business_ratio, memo
		FROM rent_details ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying rent details: %w", err)
	}
	defer rows.Close()

	var out []model.RentDetail
	for rows.Next() {
		var r model.RentDetail
		if err := rows.Scan(&r.ID, &r.PayeeAddress, &r.PayeeName, &r.RentType, &r.MonthlyRent,
			&r.AnnualTotal, &r.BusinessRatio, &r.Memo); err != nil {
			return nil, fmt.Errorf("scanning rent detail: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InsertRentDetail stores a new contract and returns its id.
func (t *Tx) InsertRentDetail(ctx context.Context, r model.RentDetail) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO rent_details (payee_address, payee_name, rent_type, monthly_rent,
			annual_total, business_ratio, memo)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.PayeeAddress, r.PayeeName, r.RentType, r.MonthlyRent, r.AnnualTotal, r.BusinessRatio, r.Memo)
	if err != nil {
		return 0, fmt.Errorf("inserting rent detail %q: %w", r.PayeeName, err)
	}
	return res.LastInsertId()
}

// DeleteRentDetail removes a contract.
func (t *Tx) DeleteRentDetail(ctx context.Context, id int64) error {
	return t.deleteByID(ctx, "rent_details", "rent detail", id)
}
