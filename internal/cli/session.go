package cli

import (
	"shop-cli/internal/cart"
	"shop-cli/internal/models"

	"github.com/google/uuid"
)

// Session is the context of one login, created at authentication and
// dropped at logout. The cart lives here rather than in any global table.
type Session struct {
	ID       uuid.UUID
	UserID   int64
	Username string
	Role     string
	Cart     *cart.Cart
}

// NewSession creates a session for an authenticated user
func NewSession(user *models.User, c *cart.Cart) *Session {
	if c == nil {
		c = cart.New()
	}
	return &Session{
		ID:       uuid.New(),
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Cart:     c,
	}
}

// IsBuyer reports whether the session belongs to a buyer
func (s *Session) IsBuyer() bool {
	return s.Role == models.RoleBuyer
}
