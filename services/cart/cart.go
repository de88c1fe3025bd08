package cart

import (
	"context"
	"fmt"

	"huduma/models"
	"huduma/utils"

	"go.uber.org/zap"
)

// Get returns the customer's current cart.
func (s *DefaultCartService) Get(ctx context.Context, customerID string) (*models.Cart, error) {
	c, err := s.Store.Load(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return c, nil
}

// AddLine merges the snapshot into the cart: an existing line for the same
// service has its quantity incremented by one, otherwise a new line with
// quantity 1 is appended.
func (s *DefaultCartService) AddLine(ctx context.Context, customerID string, snapshot models.CartLine) (*models.Cart, error) {
	c, err := s.Store.Load(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	merged := false
	for i := range c.Lines {
		if c.Lines[i].ServiceID == snapshot.ServiceID {
			c.Lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		snapshot.Quantity = 1
		c.Lines = append(c.Lines, snapshot)
	}

	if err := s.Store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	utils.GetLogger().Debug("cart line added",
		zap.String("customerID", customerID),
		zap.String("serviceID", snapshot.ServiceID))
	return c, nil
}

// RemoveLine drops the line for the given service. Removing an absent line
// is a no-op.
func (s *DefaultCartService) RemoveLine(ctx context.Context, customerID, serviceID string) (*models.Cart, error) {
	c, err := s.Store.Load(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ServiceID != serviceID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept

	if err := s.Store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return c, nil
}

// SetQuantity sets the line's quantity. A quantity of zero or less removes
// the line.
func (s *DefaultCartService) SetQuantity(ctx context.Context, customerID, serviceID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return s.RemoveLine(ctx, customerID, serviceID)
	}

	c, err := s.Store.Load(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	for i := range c.Lines {
		if c.Lines[i].ServiceID == serviceID {
			c.Lines[i].Quantity = quantity
			break
		}
	}
	if err := s.Store.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return c, nil
}

// Clear empties the customer's cart.
func (s *DefaultCartService) Clear(ctx context.Context, customerID string) error {
	if err := s.Store.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
