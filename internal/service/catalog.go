package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop-cli/internal/models"
	"shop-cli/internal/store"
	"shop-cli/internal/util"

	"go.uber.org/zap"
)

// CatalogStore is the product and category persistence the catalog service
// needs.
type CatalogStore interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	UpdateProductByID(ctx context.Context, id int64, name string, price float64, quantity int) error
	DeleteProductByID(ctx context.Context, id int64) error
	SweepDepleted(ctx context.Context) (int64, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
}

// CatalogService handles seller-side catalog management
type CatalogService struct {
	catalog CatalogStore
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog CatalogStore) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		logger:  util.GetLogger(),
	}
}

// ProductUpdate carries the optional fields of an update; nil means keep
// the current value.
type ProductUpdate struct {
	Name     *string
	Price    *float64
	Quantity *int
}

// CreateProduct inserts a product and tags it with the named categories.
// Names that resolve to no category are returned as warnings and skipped;
// the product is still created.
func (s *CatalogService) CreateProduct(ctx context.Context, name string, price float64, quantity int, categoryNames []string) (*models.Product, []string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if price < 0 {
		return nil, nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if quantity < 0 {
		return nil, nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	product := &models.Product{
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}

	var warnings []string
	for _, categoryName := range categoryNames {
		categoryName = strings.TrimSpace(categoryName)
		if categoryName == "" {
			continue
		}
		category, err := s.catalog.GetCategoryByName(ctx, categoryName)
		if errors.Is(err, store.ErrNotFound) {
			warnings = append(warnings,
				fmt.Sprintf("category %q not found, product will not be tagged with it", categoryName))
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		product.CategoryIDs = append(product.CategoryIDs, category.ID)
	}

	if err := s.catalog.CreateProduct(ctx, product); err != nil {
		return nil, nil, err
	}

	s.logger.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))
	return product, warnings, nil
}

// ListProducts returns the whole catalog
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.catalog.GetProducts(ctx)
}

// FindProduct looks up a product by exact name
func (s *CatalogService) FindProduct(ctx context.Context, name string) (*models.Product, error) {
	return s.catalog.GetProductByName(ctx, strings.TrimSpace(name))
}

// UpdateProduct resolves the product by its current name once and applies
// every provided field against the resolved id in a single update.
func (s *CatalogService) UpdateProduct(ctx context.Context, currentName string, update ProductUpdate) (*models.Product, error) {
	product, err := s.catalog.GetProductByName(ctx, strings.TrimSpace(currentName))
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
		}
		product.Name = name
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		product.Price = *update.Price
	}
	if update.Quantity != nil {
		if *update.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
		product.Quantity = *update.Quantity
	}

	if err := s.catalog.UpdateProductByID(ctx, product.ID, product.Name, product.Price, product.Quantity); err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", zap.Int64("product_id", product.ID))
	return product, nil
}

// DeleteProduct removes a product by exact name
func (s *CatalogService) DeleteProduct(ctx context.Context, name string) error {
	product, err := s.catalog.GetProductByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return err
	}

	if err := s.catalog.DeleteProductByID(ctx, product.ID); err != nil {
		return err
	}

	s.logger.Info("Product deleted",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))
	return nil
}

// SweepDepleted removes every product with no stock left
func (s *CatalogService) SweepDepleted(ctx context.Context) (int64, error) {
	removed, err := s.catalog.SweepDepleted(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("Depleted products swept", zap.Int64("removed", removed))
	}
	return removed, nil
}

// CreateCategory inserts a category
func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}

	category := &models.Category{Name: name}
	if err := s.catalog.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.catalog.GetCategories(ctx)
}
