package bookingRepo

import (
	"context"
	"errors"

	"huduma/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// ErrNotMatched is returned by UpdateStatus when the guard (id + expected
// status + version) did not match the stored document. The caller decides
// whether that means a missing booking or a stale/illegal transition.
var ErrNotMatched = errors.New("booking update matched no document")

// ListFilter narrows List results. Zero values mean "no constraint".
type ListFilter struct {
	CustomerID     string
	ProviderID     string
	ServiceID      string
	Status         string
	UnassignedOnly bool
}

// StatusUpdate is the enumerated set of fields a lifecycle transition may
// touch. Nothing else on a booking is updatable after creation.
type StatusUpdate struct {
	Status       string
	ProviderID   string // Set only by the assignment transition
	ProviderName string
}

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	// CreateAll persists the given bookings inside a single transaction;
	// either all are durably created or none.
	CreateAll(ctx context.Context, bookings []*models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter ListFilter) ([]models.Booking, error)
	// UpdateStatus applies a guarded status transition: the write only
	// lands if the stored booking still has the expected status and
	// version. Returns the updated document.
	UpdateStatus(ctx context.Context, id, expectedStatus string, expectedVersion int64, update StatusUpdate) (*models.Booking, error)
}
