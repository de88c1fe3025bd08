package booking

import (
	"context"
	"errors"

	bookingRepo "huduma/database/repository/booking"
	catalogRepo "huduma/database/repository/catalog"
	"huduma/models"
	"huduma/utils"

	"go.uber.org/zap"
)

// OtherCategory is the bucket for bookings whose service no longer maps to
// a known catalog category. Such bookings normally yield no candidates.
const OtherCategory = "Other Services"

// deriveCategory resolves the booking's service category from the catalog.
func (s *DefaultAssignmentService) deriveCategory(ctx context.Context, b *models.Booking) (string, error) {
	svc, err := s.CatalogRepo.GetByID(ctx, b.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return OtherCategory, nil
		}
		return "", NewRepositoryError("failed to resolve service category", err)
	}
	return svc.CategoryEn, nil
}

// Candidates returns the active providers whose specialization matches the
// booking's service category, in directory order. An empty result is a
// normal outcome, not an error; the booking stays pending.
func (s *DefaultAssignmentService) Candidates(ctx context.Context, bookingID string) ([]models.Provider, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking " + bookingID + " does not exist")
		}
		return nil, NewRepositoryError("failed to read booking", err)
	}

	category, err := s.deriveCategory(ctx, b)
	if err != nil {
		return nil, err
	}

	providers, err := s.ProviderRepo.List(ctx)
	if err != nil {
		return nil, NewRepositoryError("failed to list providers", err)
	}

	candidates := []models.Provider{}
	for _, p := range providers {
		if p.Active && p.Specialization == category {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		utils.GetLogger().Info("no candidate providers for booking",
			zap.String("bookingID", bookingID),
			zap.String("category", category))
	}
	return candidates, nil
}

// Assign binds one of the matched candidates to a pending booking and
// confirms it. Selecting a provider outside the candidate set is rejected.
func (s *DefaultAssignmentService) Assign(ctx context.Context, bookingID, providerID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking " + bookingID + " does not exist")
		}
		return nil, NewRepositoryError("failed to read booking", err)
	}
	if b.Status != models.StatusPending {
		return nil, NewInvalidTransitionError(b.Status, models.StatusConfirmed)
	}

	candidates, err := s.Candidates(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	var selected *models.Provider
	for i := range candidates {
		if candidates[i].ID == providerID {
			selected = &candidates[i]
			break
		}
	}
	if selected == nil {
		return nil, NewValidationError("provider " + providerID + " is not in the matched candidate set")
	}

	updated, err := s.Repo.UpdateStatus(ctx, bookingID, models.StatusPending, b.Version, bookingRepo.StatusUpdate{
		Status:       models.StatusConfirmed,
		ProviderID:   selected.ID,
		ProviderName: selected.Name,
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotMatched) {
			// Another operator got there first; judge against stored state.
			fresh, readErr := s.Repo.GetByID(ctx, bookingID)
			if readErr != nil {
				if errors.Is(readErr, bookingRepo.ErrNotFound) {
					return nil, NewNotFoundError("booking " + bookingID + " does not exist")
				}
				return nil, NewRepositoryError("failed to re-read booking", readErr)
			}
			return nil, NewInvalidTransitionError(fresh.Status, models.StatusConfirmed)
		}
		return nil, NewRepositoryError("failed to assign provider", err)
	}

	utils.GetLogger().Info("provider assigned",
		zap.String("bookingID", bookingID),
		zap.String("providerID", selected.ID),
		zap.String("providerName", selected.Name))
	return updated, nil
}
