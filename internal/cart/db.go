package cart

import (
	"context"

	"shop-cli/internal/store"
)

// DBStore persists cart snapshots in the relational store's carts table,
// keeping all durable state behind one mechanism.
type DBStore struct {
	store *store.Store
}

// NewDBStore wraps the relational store as a snapshot backend
func NewDBStore(s *store.Store) *DBStore {
	return &DBStore{store: s}
}

// Save replaces the user's persisted cart rows
func (d *DBStore) Save(ctx context.Context, userID int64, c *Cart) error {
	return d.store.SaveCart(ctx, userID, c.Items())
}

// Load retrieves the user's persisted cart, empty cart if none exists
func (d *DBStore) Load(ctx context.Context, userID int64) (*Cart, error) {
	items, err := d.store.LoadCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FromItems(items), nil
}
