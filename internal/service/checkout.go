package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"shop-cli/internal/cart"
	"shop-cli/internal/models"
	"shop-cli/internal/store"
	"shop-cli/internal/util"

	"go.uber.org/zap"
)

// CheckoutStore is the persistence the checkout service needs.
type CheckoutStore interface {
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	DeductStockTx(ctx context.Context, userID, itemID int64, quantity int) error
	RestoreStock(ctx context.Context, itemID int64, quantity int) error
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error)
}

// CheckoutService handles the buyer side: reserving stock into a cart and
// the order log.
type CheckoutService struct {
	store  CheckoutStore
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(checkoutStore CheckoutStore) *CheckoutService {
	return &CheckoutService{
		store:  checkoutStore,
		logger: util.GetLogger(),
	}
}

// CartLine is one cart entry resolved for display
type CartLine struct {
	ProductID int64
	Name      string
	Price     float64
	Quantity  int
}

// Checkout reserves stock for the buyer: the product's quantity is deducted
// immediately, the order is recorded, and the cart picks up the line. Stock
// is untouched when the product is missing or the request exceeds what is
// available.
func (s *CheckoutService) Checkout(ctx context.Context, userID int64, c *cart.Cart, productName string, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	product, err := s.store.GetProductByName(ctx, strings.TrimSpace(productName))
	if err != nil {
		return nil, err
	}

	if err := s.store.DeductStockTx(ctx, userID, product.ID, quantity); err != nil {
		return nil, err
	}

	c.AddItem(product.ID, quantity)
	product.Quantity -= quantity

	s.logger.Info("Checkout",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", product.ID),
		zap.Int("quantity", quantity),
		zap.Int("stock_left", product.Quantity))
	return product, nil
}

// RemoveFromCart drops a product from the cart and returns its reserved
// quantity to stock.
func (s *CheckoutService) RemoveFromCart(ctx context.Context, c *cart.Cart, productName string) error {
	product, err := s.store.GetProductByName(ctx, strings.TrimSpace(productName))
	if err != nil {
		return err
	}

	quantity := c.RemoveItem(product.ID)
	if quantity == 0 {
		return fmt.Errorf("%w: product not in cart", store.ErrNotFound)
	}

	if err := s.store.RestoreStock(ctx, product.ID, quantity); err != nil {
		return err
	}

	s.logger.Info("Cart item removed",
		zap.Int64("product_id", product.ID),
		zap.Int("restored", quantity))
	return nil
}

// RecordOrder resolves a product by name and appends an order record
// without touching stock, for flows where the deduction already happened.
func (s *CheckoutService) RecordOrder(ctx context.Context, userID int64, productName string, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	product, err := s.store.GetProductByName(ctx, strings.TrimSpace(productName))
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:   userID,
		ItemID:   product.ID,
		Quantity: quantity,
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CartLines resolves the cart's product ids for display. Products removed
// from the catalog since they were added show up as unavailable.
func (s *CheckoutService) CartLines(ctx context.Context, c *cart.Cart) ([]CartLine, error) {
	lines := make([]CartLine, 0, c.Len())
	for productID, quantity := range c.Items() {
		product, err := s.store.GetProductByID(ctx, productID)
		if errors.Is(err, store.ErrNotFound) {
			lines = append(lines, CartLine{
				ProductID: productID,
				Name:      "(no longer available)",
				Quantity:  quantity,
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines, nil
}

// Orders returns the buyer's order history, newest first
func (s *CheckoutService) Orders(ctx context.Context, userID int64) ([]models.Order, error) {
	return s.store.GetOrdersByUserID(ctx, userID)
}
