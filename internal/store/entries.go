package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aoiro-dev/aoiro/internal/model"
)

const selectEntries = `
SELECT j.id, j.date, j.debit_account_id, j.debit_amount, j.credit_account_id,
       j.credit_amount, j.description, j.created_at, d.name, c.name
FROM journal_entries j
JOIN accounts d ON d.id = j.debit_account_id
JOIN accounts c ON c.id = j.credit_account_id`

// Entries returns every entry in the period ordered by date, then id.
func (t *Tx) Entries(ctx context.Context, p model.Period) ([]model.JournalEntry, error) {
	from, to := bounds(p)
	return t.queryEntries(ctx, selectEntries+` WHERE j.date >= ? AND j.date < ? ORDER BY j.date, j.id`, from, to)
}

// AllEntries returns the whole ledger ordered by date, then id.
func (t *Tx) AllEntries(ctx context.Context) ([]model.JournalEntry, error) {
	return t.queryEntries(ctx, selectEntries+` ORDER BY j.date, j.id`)
}

// Entry returns one entry, or model.ErrNotFound.
func (t *Tx) Entry(ctx context.Context, id int64) (model.JournalEntry, error) {
	entries, err := t.queryEntries(ctx, selectEntries+` WHERE j.id = ?`, id)
	if err != nil {
		return model.JournalEntry{}, err
	}
	if len(entries) == 0 {
		return model.JournalEntry{}, fmt.Errorf("entry %d: %w", id, model.ErrNotFound)
	}
	return entries[0], nil
}

func (t *Tx) queryEntries(ctx context.Context, query string, args ...any) ([]model.JournalEntry, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var out []model.JournalEntry
	for rows.Next() {
		var (
			e               model.JournalEntry
			date, createdAt string
		)
		if err := rows.Scan(&e.ID, &date, &e.DebitAccountID, &e.DebitAmount, &e.CreditAccountID,
			&e.CreditAmount, &e.Description, &createdAt, &e.DebitAccountName, &e.CreditAccountName); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if e.Date, err = time.Parse(model.DateFormat, date); err != nil {
			return nil, fmt.Errorf("entry %d date: %w", e.ID, err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("entry %d created_at: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InsertEntry stores a new entry and returns its id.
func (t *Tx) InsertEntry(ctx context.Context, e model.JournalEntry) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO journal_entries (date, debit_account_id, debit_amount, credit_account_id,
			credit_amount, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Date.Format(model.DateFormat), e.DebitAccountID, e.DebitAmount, e.CreditAccountID,
		e.CreditAmount, e.Description, e.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting entry: %w", err)
	}
	return res.LastInsertId()
}

// UpdateEntry replaces the date, accounts, amounts and description of an
// entry. created_at is kept.
func (t *Tx) UpdateEntry(ctx context.Context, e model.JournalEntry) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE journal_entries
		SET date = ?, debit_account_id = ?, debit_amount = ?, credit_account_id = ?,
			credit_amount = ?, description = ?
		WHERE id = ?`,
		e.Date.Format(model.DateFormat), e.DebitAccountID, e.DebitAmount, e.CreditAccountID,
		e.CreditAmount, e.Description, e.ID)
	if err != nil {
		return fmt.Errorf("updating entry %d: %w", e.ID, err)
	}
	return expectOne(res, "entry", e.ID)
}

// DeleteEntry removes an entry.
func (t *Tx) DeleteEntry(ctx context.Context, id int64) error {
	return t.deleteByID(ctx, "journal_entries", "entry", id)
}

// bounds returns the half-open date range [from, to) covering p.
func bounds(p model.Period) (string, string) {
	from := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	if p.Month != 0 {
		from = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0)
	}
	return from.Format(model.DateFormat), to.Format(model.DateFormat)
}

func (t *Tx) deleteByID(ctx context.Context, table, what string, id int64) error {
	// table is always a constant from this package.
	res, err := t.tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", what, id, err)
	}
	return expectOne(res, what, id)
}

func expectOne(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: %w", what, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, model.ErrNotFound)
	}
	return nil
}
