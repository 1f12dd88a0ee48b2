package store

import (
	"context"
	"fmt"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Accounts returns the chart of accounts ordered by code.
func (t *Tx) Accounts(ctx context.Context) ([]model.Account, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT id, code, name, classification FROM accounts ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		var (
			a     model.Account
			class string
		)
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &class); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		a.Classification, err = model.ParseClassification(class)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", a.Code, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// InsertAccount stores a new account and returns its id.
func (t *Tx) InsertAccount(ctx context.Context, a model.Account) (int64, error) {
	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO accounts (code, name, classification) VALUES (?, ?, ?)`,
		a.Code, a.Name, a.Classification.String())
	if err != nil {
		return 0, fmt.Errorf("inserting account %d: %w", a.Code, err)
	}
	return res.LastInsertId()
}
