package cart

import "context"

// Cart holds a buyer's selection for one session, keyed strictly by product
// id so two lookups of the same product can never produce distinct entries.
type Cart struct {
	items map[int64]int
}

// New creates an empty cart
func New() *Cart {
	return &Cart{items: make(map[int64]int)}
}

// FromItems creates a cart from a loaded snapshot
func FromItems(items map[int64]int) *Cart {
	c := New()
	for id, qty := range items {
		if qty > 0 {
			c.items[id] = qty
		}
	}
	return c
}

// AddItem adds quantity for a product, accumulating onto an existing entry.
// Stock validation happens at the call site before the cart is touched.
func (c *Cart) AddItem(productID int64, quantity int) {
	if quantity <= 0 {
		return
	}
	c.items[productID] += quantity
}

// RemoveItem drops the product's entry entirely and returns the quantity
// that was held, zero if the product was not in the cart.
func (c *Cart) RemoveItem(productID int64) int {
	qty := c.items[productID]
	delete(c.items, productID)
	return qty
}

// Quantity returns the held quantity for a product
func (c *Cart) Quantity(productID int64) int {
	return c.items[productID]
}

// Items returns a copy of the cart contents
func (c *Cart) Items() map[int64]int {
	out := make(map[int64]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Len returns the number of distinct products held
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds nothing
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// SnapshotStore persists carts between sessions. Load for a user with no
// prior snapshot returns an empty cart, not an error.
type SnapshotStore interface {
	Save(ctx context.Context, userID int64, c *Cart) error
	Load(ctx context.Context, userID int64) (*Cart, error)
}
