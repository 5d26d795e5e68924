package models

import (
	"time"

	"github.com/lib/pq"
)

// User roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleBuyer || role == RoleSeller
}

// User represents a registered account
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password" json:"-"`
	Role         string `db:"role" json:"role"`
}

// Product represents a catalog item with its stock level
type Product struct {
	ID          int64         `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Price       float64       `db:"price" json:"price"`
	Quantity    int           `db:"quantity" json:"quantity"`
	CategoryIDs pq.Int64Array `db:"category_ids" json:"category_ids"`
}

// Category represents a product tag
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Order is an append-only checkout log entry
type Order struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ItemID    int64     `db:"item_id" json:"item_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CartRow is a persisted cart line in the carts table
type CartRow struct {
	UserID   int64 `db:"user_id"`
	ItemID   int64 `db:"item_id"`
	Quantity int   `db:"quantity"`
}
