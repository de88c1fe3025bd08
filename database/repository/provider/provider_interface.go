package providerRepo

import (
	"context"
	"errors"

	"huduma/models"
)

// ErrNotFound is returned when no provider matches the given id.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository defines read-only access to the provider directory.
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// List returns the directory in a stable order.
	List(ctx context.Context) ([]models.Provider, error)
}
