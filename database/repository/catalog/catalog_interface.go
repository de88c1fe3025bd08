package catalogRepo

import (
	"context"
	"errors"

	"huduma/models"
)

// ErrNotFound is returned when no service matches the given id.
var ErrNotFound = errors.New("service not found")

// CatalogRepository defines read-only access to the service catalog.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
}
