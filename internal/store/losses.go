package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// LossCarryforwards returns the loss records ordered by loss year.
func (t *Tx) LossCarryforwards(ctx context.Context) ([]model.LossCarryforward, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, loss_year, loss_amount, used_year_1, used_year_2, used_year_3, memo
		FROM loss_carryforward ORDER BY loss_year, id`)
	if err != nil {
		return nil, fmt.Errorf("querying loss carryforwards: %w", err)
	}
	defer rows.Close()

	var out []model.LossCarryforward
	for rows.Next() {
		var l model.LossCarryforward
		if err := rows.Scan(&l.ID, &l.LossYear, &l.LossAmount, &l.UsedYear1, &l.UsedYear2,
			&l.UsedYear3, &l.Memo); err != nil {
			return nil, fmt.Errorf("scanning loss carryforward: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// LossCarryforward returns one record, or model.ErrNotFound.
func (t *Tx) LossCarryforward(ctx context.Context, id int64) (model.LossCarryforward, error) {
	var l model.LossCarryforward
	err := t.tx.QueryRowContext(ctx, `
		SELECT id, loss_year, loss_amount, used_year_1, used_year_2, used_year_3, memo
		FROM loss_carryforward WHERE id = ?`, id).
		Scan(&l.ID, &l.LossYear, &l.LossAmount, &l.UsedYear1, &l.UsedYear2, &l.UsedYear3, &l.Memo)
	if errors.Is(err, sql.ErrNoRows) {
		return l, fmt.Errorf("loss carryforward %d: %w", id, model.ErrNotFound)
	}
	if err != nil {
		return l, fmt.Errorf("querying loss carryforward %d: %w", id, err)
	}
	return l, nil
}

// InsertLossCarryforward stores a new record and returns its id.
func (t *Tx) InsertLossCarryforward(ctx context.Context, l model.LossCarryforward) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO loss_carryforward (loss_year, loss_amount, used_year_1, used_year_2,
			used_year_3, memo)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.LossYear, l.LossAmount, l.UsedYear1, l.UsedYear2, l.UsedYear3, l.Memo)
	if err != nil {
		return 0, fmt.Errorf("inserting loss carryforward for %d: %w", l.LossYear, err)
	}
	return res.LastInsertId()
}

// UpdateLossUsage overwrites the three usage slots of a record.
func (t *Tx) UpdateLossUsage(ctx context.Context, l model.LossCarryforward) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE loss_carryforward SET used_year_1 = ?, used_year_2 = ?, used_year_3 = ?
		WHERE id = ?`,
		l.UsedYear1, l.UsedYear2, l.UsedYear3, l.ID)
	if err != nil {
		return fmt.Errorf("updating loss carryforward %d: %w", l.ID, err)
	}
	return expectOne(res, "loss carryforward", l.ID)
}

// DeleteLossCarryforward removes a record.
func (t *Tx) DeleteLossCarryforward(ctx context.Context, id int64) error {
	return t.deleteByID(ctx, "loss_carryforward", "loss carryforward", id)
}
