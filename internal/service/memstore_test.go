package service

import (
	"context"
	"fmt"
	"sort"

	"shop-cli/internal/models"
	"shop-cli/internal/store"
)

// memStore is an in-memory stand-in for the relational store, implementing
// the interfaces the services consume.
type memStore struct {
	users          map[string]*models.User
	nextUserID     int64
	products       []*models.Product
	nextProductID  int64
	categories     []*models.Category
	nextCategoryID int64
	orders         []models.Order
	nextOrderID    int64
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*models.User)}
}

func (m *memStore) CreateUser(ctx context.Context, user *models.User) error {
	if _, exists := m.users[user.Username]; exists {
		return store.ErrDuplicateUsername
	}
	m.nextUserID++
	user.ID = m.nextUserID
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *memStore) GetUserByCredentials(ctx context.Context, username, passwordHash string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok || user.PasswordHash != passwordHash {
		return nil, store.ErrNotFound
	}
	out := *user
	return &out, nil
}

func copyProduct(p *models.Product) *models.Product {
	out := *p
	out.CategoryIDs = append(out.CategoryIDs[:0:0], p.CategoryIDs...)
	return &out
}

func (m *memStore) CreateProduct(ctx context.Context, product *models.Product) error {
	m.nextProductID++
	product.ID = m.nextProductID
	m.products = append(m.products, copyProduct(product))
	return nil
}

func (m *memStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *copyProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	var found *models.Product
	for _, p := range m.products {
		if p.Name == name && (found == nil || p.ID < found.ID) {
			found = p
		}
	}
	if found == nil {
		return nil, store.ErrNotFound
	}
	return copyProduct(found), nil
}

func (m *memStore) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return copyProduct(p), nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) UpdateProductByID(ctx context.Context, id int64, name string, price float64, quantity int) error {
	for _, p := range m.products {
		if p.ID == id {
			p.Name = name
			p.Price = price
			p.Quantity = quantity
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) DeleteProductByID(ctx context.Context, id int64) error {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) SweepDepleted(ctx context.Context) (int64, error) {
	var kept []*models.Product
	var removed int64
	for _, p := range m.products {
		if p.Quantity <= 0 {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	m.products = kept
	return removed, nil
}

func (m *memStore) CreateCategory(ctx context.Context, category *models.Category) error {
	m.nextCategoryID++
	category.ID = m.nextCategoryID
	stored := *category
	m.categories = append(m.categories, &stored)
	return nil
}

func (m *memStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memStore) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			out := *c
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) DeductStockTx(ctx context.Context, userID, itemID int64, quantity int) error {
	for _, p := range m.products {
		if p.ID != itemID {
			continue
		}
		if p.Quantity < quantity {
			return fmt.Errorf("%w: available=%d, requested=%d",
				store.ErrInsufficientStock, p.Quantity, quantity)
		}
		p.Quantity -= quantity
		m.nextOrderID++
		m.orders = append(m.orders, models.Order{
			ID:       m.nextOrderID,
			UserID:   userID,
			ItemID:   itemID,
			Quantity: quantity,
		})
		return nil
	}
	return store.ErrNotFound
}

func (m *memStore) RestoreStock(ctx context.Context, itemID int64, quantity int) error {
	for _, p := range m.products {
		if p.ID == itemID {
			p.Quantity += quantity
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) CreateOrder(ctx context.Context, order *models.Order) error {
	m.nextOrderID++
	order.ID = m.nextOrderID
	m.orders = append(m.orders, *order)
	return nil
}

func (m *memStore) GetOrdersByUserID(ctx context.Context, userID int64) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
