package booking

import (
	"context"
	"errors"

	bookingRepo "huduma/database/repository/booking"
	"huduma/models"
)

// Get retrieves a booking by id.
func (s *DefaultLifecycleService) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking " + bookingID + " does not exist")
		}
		return nil, NewRepositoryError("failed to read booking", err)
	}
	return b, nil
}

// List retrieves bookings matching the given filter.
func (s *DefaultLifecycleService) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, NewRepositoryError("failed to list bookings", err)
	}
	return bookings, nil
}
