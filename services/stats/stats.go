package stats

import (
	"context"

	bookingRepo "huduma/database/repository/booking"
	"huduma/models"
)

// Summary holds the dashboard metrics derived from the booking set.
// Recomputed on every read; nothing is stored.
type Summary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	PendingCount   int     `json:"pending_count"`
	CompletedCount int     `json:"completed_count"`
	TotalBookings  int     `json:"total_bookings"`
}

// StatsService derives dashboard metrics from the booking set.
type StatsService interface {
	Summary(ctx context.Context) (*Summary, error)
}

// DefaultStatsService implements StatsService.
type DefaultStatsService struct {
	Repo bookingRepo.BookingRepository
}

// TotalRevenue sums totalAmount over completed bookings. Zero on an empty
// set; non-completed bookings never contribute.
func TotalRevenue(bookings []models.Booking) float64 {
	var revenue float64
	for _, b := range bookings {
		if b.Status == models.StatusCompleted {
			revenue += b.TotalAmount
		}
	}
	return revenue
}

// CountByStatus counts bookings with the given status.
func CountByStatus(bookings []models.Booking, status string) int {
	var count int
	for _, b := range bookings {
		if b.Status == status {
			count++
		}
	}
	return count
}

// Fold computes the full summary from a booking set.
func Fold(bookings []models.Booking) *Summary {
	return &Summary{
		TotalRevenue:   TotalRevenue(bookings),
		PendingCount:   CountByStatus(bookings, models.StatusPending),
		CompletedCount: CountByStatus(bookings, models.StatusCompleted),
		TotalBookings:  len(bookings),
	}
}

// Summary fetches the booking set and folds it into dashboard metrics.
func (s *DefaultStatsService) Summary(ctx context.Context) (*Summary, error) {
	bookings, err := s.Repo.List(ctx, bookingRepo.ListFilter{})
	if err != nil {
		return nil, err
	}
	return Fold(bookings), nil
}
