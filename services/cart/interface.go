package cart

import (
	"context"

	"huduma/models"
)

// CartStore persists carts keyed by customer id. Cart persistence is
// best-effort session state, not server-of-record data.
type CartStore interface {
	// Load returns the stored cart, or an empty cart when none exists.
	Load(ctx context.Context, customerID string) (*models.Cart, error)
	Save(ctx context.Context, c *models.Cart) error
	Delete(ctx context.Context, customerID string) error
}

// CartService manages the line items of a customer session.
type CartService interface {
	Get(ctx context.Context, customerID string) (*models.Cart, error)
	AddLine(ctx context.Context, customerID string, snapshot models.CartLine) (*models.Cart, error)
	RemoveLine(ctx context.Context, customerID, serviceID string) (*models.Cart, error)
	SetQuantity(ctx context.Context, customerID, serviceID string, quantity int) (*models.Cart, error)
	Clear(ctx context.Context, customerID string) error
}

// DefaultCartService implements CartService.
type DefaultCartService struct {
	Store CartStore
}
