package store

import (
	"context"
	"database/sql"
	"fmt"

	"shop-cli/internal/models"
)

const productSelect = `
	SELECT items.id, items.name, items.price, items.quantity,
	       COALESCE(array_agg(item_categories.category_id)
	                FILTER (WHERE item_categories.category_id IS NOT NULL), '{}') AS category_ids
	FROM items
	LEFT JOIN item_categories ON items.id = item_categories.item_id`

// CreateProduct inserts an item row together with its category tags in one
// transaction.
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.GetContext(ctx, &product.ID,
		"INSERT INTO items (name, price, quantity) VALUES ($1, $2, $3) RETURNING id",
		product.Name, product.Price, product.Quantity)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	for _, categoryID := range product.CategoryIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO item_categories (item_id, category_id) VALUES ($1, $2)",
			product.ID, categoryID)
		if err != nil {
			return fmt.Errorf("failed to tag product: %w", err)
		}
	}

	return tx.Commit()
}

// GetProducts retrieves all products with their category ids aggregated
func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products,
		productSelect+" GROUP BY items.id ORDER BY items.id")
	return products, err
}

// GetProductByName retrieves a product by exact name. Names are not unique;
// the lowest id wins, matching insertion order.
func (s *Store) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product,
		productSelect+" WHERE items.name = $1 GROUP BY items.id ORDER BY items.id LIMIT 1",
		name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductByID retrieves a product by id
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product,
		productSelect+" WHERE items.id = $1 GROUP BY items.id", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProductByID applies name, price and quantity in a single id-keyed
// update.
func (s *Store) UpdateProductByID(ctx context.Context, id int64, name string, price float64, quantity int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET name = $1, price = $2, quantity = $3 WHERE id = $4",
		name, price, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProductByID removes a product and its category tags
func (s *Store) DeleteProductByID(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM item_categories WHERE item_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete product tags: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// SweepDepleted deletes every product whose quantity dropped to zero or
// below, returning how many were removed.
func (s *Store) SweepDepleted(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM item_categories
		WHERE item_id IN (SELECT id FROM items WHERE quantity <= 0)`)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep product tags: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM items WHERE quantity <= 0")
	if err != nil {
		return 0, fmt.Errorf("failed to sweep depleted products: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return removed, tx.Commit()
}

// CreateCategory inserts a category
func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	err := s.db.GetContext(ctx, &category.ID,
		"INSERT INTO categories (name) VALUES ($1) RETURNING id",
		category.Name)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetCategories retrieves all categories
func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.SelectContext(ctx, &categories,
		"SELECT * FROM categories ORDER BY id")
	return categories, err
}

// GetCategoryByName retrieves a category by exact name
func (s *Store) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := s.db.GetContext(ctx, &category,
		"SELECT * FROM categories WHERE name = $1 ORDER BY id LIMIT 1", name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
