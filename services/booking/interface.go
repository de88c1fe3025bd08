package booking

import (
	"context"

	bookingRepo "huduma/database/repository/booking"
	catalogRepo "huduma/database/repository/catalog"
	providerRepo "huduma/database/repository/provider"
	"huduma/models"
)

// LifecycleService applies booking status transitions and serves reads.
type LifecycleService interface {
	Get(ctx context.Context, bookingID string) (*models.Booking, error)
	List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error)
	Start(ctx context.Context, bookingID string) (*models.Booking, error)
	Complete(ctx context.Context, bookingID string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)
}

// AssignmentService narrows the provider directory to viable candidates
// for a pending booking and executes the assignment transition.
type AssignmentService interface {
	Candidates(ctx context.Context, bookingID string) ([]models.Provider, error)
	Assign(ctx context.Context, bookingID, providerID string) (*models.Booking, error)
	PendingQueue(ctx context.Context) ([]QueueEntry, error)
}

// DefaultLifecycleService implements LifecycleService.
type DefaultLifecycleService struct {
	Repo bookingRepo.BookingRepository
}

// DefaultAssignmentService implements AssignmentService.
type DefaultAssignmentService struct {
	Repo         bookingRepo.BookingRepository
	CatalogRepo  catalogRepo.CatalogRepository
	ProviderRepo providerRepo.ProviderRepository
}
