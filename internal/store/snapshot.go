package store

import (
	"context"

	"github.com/aoiro-dev/aoiro/internal/model"
)

// Snapshot reads every register inside one transaction, so all of it
// reflects the same committed state.
func (d *DB) Snapshot(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot
	err := d.Transaction(ctx, func(tx *Tx) error {
		var err error
		if snap.Accounts, err = tx.Accounts(ctx); err != nil {
			return err
		}
		if snap.Entries, err = tx.AllEntries(ctx); err != nil {
			return err
		}
		if snap.Assets, err = tx.FixedAssets(ctx); err != nil {
			return err
		}
		if snap.Rents, err = tx.RentDetails(ctx); err != nil {
			return err
		}
		snap.Losses, err = tx.LossCarryforwards(ctx)
		return err
	})
	return snap, err
}
