package cart

import (
	"context"
	"testing"

	"huduma/models"
)

// fakeStore keeps carts in a map, like the Redis store but synchronous.
type fakeStore struct {
	carts map[string]*models.Cart
}

func newFakeStore() *fakeStore {
	return &fakeStore{carts: map[string]*models.Cart{}}
}

func (s *fakeStore) Load(ctx context.Context, customerID string) (*models.Cart, error) {
	if c, ok := s.carts[customerID]; ok {
		copied := *c
		copied.Lines = append([]models.CartLine{}, c.Lines...)
		return &copied, nil
	}
	return &models.Cart{CustomerID: customerID, Lines: []models.CartLine{}}, nil
}

func (s *fakeStore) Save(ctx context.Context, c *models.Cart) error {
	s.carts[c.CustomerID] = c
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, customerID string) error {
	delete(s.carts, customerID)
	return nil
}

func cleaningLine() models.CartLine {
	return models.CartLine{
		ServiceID: "svc-clean",
		Name:      "House Cleaning",
		UnitPrice: 50000,
		Quantity:  1,
	}
}

func TestAddLine(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultCartService{Store: newFakeStore()}

	t.Run("first add creates a line with quantity one", func(t *testing.T) {
		c, err := svc.AddLine(ctx, "cust-1", cleaningLine())
		if err != nil {
			t.Fatalf("AddLine: %v", err)
		}
		if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
			t.Fatalf("cart = %+v, want one line with quantity 1", c.Lines)
		}
	})

	t.Run("repeat add merges by incrementing quantity", func(t *testing.T) {
		c, err := svc.AddLine(ctx, "cust-1", cleaningLine())
		if err != nil {
			t.Fatalf("AddLine: %v", err)
		}
		if len(c.Lines) != 1 {
			t.Fatalf("cart has %d lines, want merge into 1", len(c.Lines))
		}
		if c.Lines[0].Quantity != 2 {
			t.Errorf("quantity = %d, want 2", c.Lines[0].Quantity)
		}
	})

	t.Run("a different service appends a new line", func(t *testing.T) {
		c, err := svc.AddLine(ctx, "cust-1", models.CartLine{ServiceID: "svc-plumb", Name: "Pipe Repair", UnitPrice: 30000})
		if err != nil {
			t.Fatalf("AddLine: %v", err)
		}
		if len(c.Lines) != 2 {
			t.Fatalf("cart has %d lines, want 2", len(c.Lines))
		}
		if c.ItemCount() != 3 {
			t.Errorf("item count = %d, want 3", c.ItemCount())
		}
	})
}

func TestRemoveLine(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultCartService{Store: newFakeStore()}
	if _, err := svc.AddLine(ctx, "cust-1", cleaningLine()); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	c, err := svc.RemoveLine(ctx, "cust-1", "svc-clean")
	if err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if len(c.Lines) != 0 {
		t.Fatalf("cart = %+v, want empty", c.Lines)
	}

	// Removing an absent line is a no-op, not an error.
	if _, err := svc.RemoveLine(ctx, "cust-1", "svc-clean"); err != nil {
		t.Fatalf("repeat RemoveLine: %v", err)
	}
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultCartService{Store: newFakeStore()}
	if _, err := svc.AddLine(ctx, "cust-1", cleaningLine()); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	t.Run("sets the line quantity directly", func(t *testing.T) {
		c, err := svc.SetQuantity(ctx, "cust-1", "svc-clean", 4)
		if err != nil {
			t.Fatalf("SetQuantity: %v", err)
		}
		if c.Lines[0].Quantity != 4 {
			t.Errorf("quantity = %d, want 4", c.Lines[0].Quantity)
		}
		if c.Total() != 200000 {
			t.Errorf("total = %v, want 200000", c.Total())
		}
	})

	t.Run("zero or less removes the line", func(t *testing.T) {
		c, err := svc.SetQuantity(ctx, "cust-1", "svc-clean", 0)
		if err != nil {
			t.Fatalf("SetQuantity: %v", err)
		}
		if len(c.Lines) != 0 {
			t.Fatalf("cart = %+v, want empty", c.Lines)
		}
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := &DefaultCartService{Store: store}
	if _, err := svc.AddLine(ctx, "cust-1", cleaningLine()); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if err := svc.Clear(ctx, "cust-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	c, err := svc.Get(ctx, "cust-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(c.Lines) != 0 {
		t.Fatalf("cart = %+v, want empty after clear", c.Lines)
	}
}

func TestCartsAreIsolatedByCustomer(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultCartService{Store: newFakeStore()}

	if _, err := svc.AddLine(ctx, "cust-1", cleaningLine()); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	other, err := svc.Get(ctx, "cust-2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(other.Lines) != 0 {
		t.Fatalf("cust-2 cart = %+v, want empty", other.Lines)
	}
}
