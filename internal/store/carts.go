package store

import (
	"context"
	"fmt"

	"shop-cli/internal/models"
)

// SaveCart replaces the persisted cart rows for a user with the given
// item quantities.
func (s *Store) SaveCart(ctx context.Context, userID int64, items map[int64]int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM carts WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	for itemID, quantity := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO carts (user_id, item_id, quantity) VALUES ($1, $2, $3)",
			userID, itemID, quantity)
		if err != nil {
			return fmt.Errorf("failed to save cart line: %w", err)
		}
	}

	return tx.Commit()
}

// LoadCart retrieves the persisted cart for a user. A user with no saved
// cart gets an empty map.
func (s *Store) LoadCart(ctx context.Context, userID int64) (map[int64]int, error) {
	var rows []models.CartRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT user_id, item_id, quantity FROM carts WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	items := make(map[int64]int, len(rows))
	for _, row := range rows {
		items[row.ItemID] = row.Quantity
	}
	return items, nil
}
