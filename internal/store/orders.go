package store

import (
	"context"
	"fmt"

	"shop-cli/internal/models"
)

// DeductStockTx deducts stock for a checkout and appends the order record in
// the same transaction (FOR UPDATE lock). Stock is left untouched when the
// requested quantity exceeds what is available.
func (s *Store) DeductStockTx(ctx context.Context, userID, itemID int64, quantity int) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var available int
	err = tx.GetContext(ctx, &available,
		"SELECT quantity FROM items WHERE id = $1 FOR UPDATE", itemID)
	if err != nil {
		return fmt.Errorf("failed to lock stock: %w", err)
	}

	if available < quantity {
		return fmt.Errorf("%w: available=%d, requested=%d", ErrInsufficientStock, available, quantity)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE items SET quantity = quantity - $1 WHERE id = $2",
		quantity, itemID)
	if err != nil {
		return fmt.Errorf("failed to deduct stock: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO orders (user_id, item_id, quantity) VALUES ($1, $2, $3)",
		userID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}

	return tx.Commit()
}

// RestoreStock returns quantity to an item's stock, the compensation for a
// cart line that was given up.
func (s *Store) RestoreStock(ctx context.Context, itemID int64, quantity int) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE items SET quantity = quantity + $1 WHERE id = $2",
		quantity, itemID)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}

// CreateOrder appends an order record
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, order, query,
		order.UserID, order.ItemID, order.Quantity)
}

// GetOrdersByUserID retrieves orders for a user, newest first
func (s *Store) GetOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	return orders, err
}
