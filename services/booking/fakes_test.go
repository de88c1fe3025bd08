package booking

import (
	"context"

	bookingRepo "huduma/database/repository/booking"
	catalogRepo "huduma/database/repository/catalog"
	providerRepo "huduma/database/repository/provider"
	"huduma/models"
)

// fakeBookingRepo is an in-memory BookingRepository. beforeUpdate, when set,
// runs before the guard check so tests can simulate a concurrent writer.
type fakeBookingRepo struct {
	bookings     map[string]*models.Booking
	getErr       error
	listErr      error
	beforeUpdate func(r *fakeBookingRepo)
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		copied := *b
		r.bookings[b.ID] = &copied
	}
	return r
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) CreateAll(ctx context.Context, bookings []*models.Booking) error {
	for _, b := range bookings {
		copied := *b
		r.bookings[b.ID] = &copied
	}
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []models.Booking{}
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && b.CustomerID != filter.CustomerID {
			continue
		}
		if filter.ServiceID != "" && b.ServiceID != filter.ServiceID {
			continue
		}
		if filter.UnassignedOnly && b.ProviderID != "" {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id, expectedStatus string, expectedVersion int64, update bookingRepo.StatusUpdate) (*models.Booking, error) {
	if r.beforeUpdate != nil {
		r.beforeUpdate(r)
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != expectedStatus || b.Version != expectedVersion {
		return nil, bookingRepo.ErrNotMatched
	}
	b.Status = update.Status
	if update.ProviderID != "" {
		b.ProviderID = update.ProviderID
		b.ProviderName = update.ProviderName
	}
	b.Version++
	copied := *b
	return &copied, nil
}

// fakeCatalog is an in-memory CatalogRepository.
type fakeCatalog struct {
	services map[string]models.Service
	err      error
}

func (r *fakeCatalog) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if r.err != nil {
		return nil, r.err
	}
	svc, ok := r.services[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	return &svc, nil
}

func (r *fakeCatalog) GetAll(ctx context.Context) ([]models.Service, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Service{}
	for _, svc := range r.services {
		out = append(out, svc)
	}
	return out, nil
}

// fakeDirectory is an in-memory ProviderRepository returning providers in
// the order given.
type fakeDirectory struct {
	providers []models.Provider
	err       error
}

func (r *fakeDirectory) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.providers {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, providerRepo.ErrNotFound
}

func (r *fakeDirectory) List(ctx context.Context) ([]models.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]models.Provider{}, r.providers...), nil
}
