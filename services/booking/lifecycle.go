package booking

import (
	"context"
	"errors"

	bookingRepo "huduma/database/repository/booking"
	"huduma/models"
	"huduma/utils"

	"go.uber.org/zap"
)

// legalTransitions maps each non-terminal status to the statuses it may
// move to. Completed and cancelled have no outgoing edges.
var legalTransitions = map[string][]string{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether the state machine permits moving a booking
// from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// maxTransitionAttempts bounds the re-validate loop when a guarded write
// loses a race. Each retry re-reads the stored status first, so a losing
// writer is always judged against current state, not its stale read.
const maxTransitionAttempts = 3

func (s *DefaultLifecycleService) transition(ctx context.Context, bookingID, to string) (*models.Booking, error) {
	logger := utils.GetLogger()

	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		current, err := s.Repo.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) {
				return nil, NewNotFoundError("booking " + bookingID + " does not exist")
			}
			return nil, NewRepositoryError("failed to read booking", err)
		}

		if !CanTransition(current.Status, to) {
			return nil, NewInvalidTransitionError(current.Status, to)
		}

		updated, err := s.Repo.UpdateStatus(ctx, bookingID, current.Status, current.Version, bookingRepo.StatusUpdate{Status: to})
		if err == nil {
			logger.Info("booking transitioned",
				zap.String("bookingID", bookingID),
				zap.String("from", current.Status),
				zap.String("to", to))
			return updated, nil
		}
		if errors.Is(err, bookingRepo.ErrNotMatched) {
			// Lost a race; loop re-reads and re-validates.
			logger.Debug("booking transition raced, re-reading",
				zap.String("bookingID", bookingID), zap.String("to", to))
			continue
		}
		return nil, NewRepositoryError("failed to update booking", err)
	}

	return nil, NewRepositoryError("booking update kept racing", errors.New("too many concurrent writers"))
}

// Start moves a confirmed booking into in_progress.
func (s *DefaultLifecycleService) Start(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.StatusInProgress)
}

// Complete moves an in_progress booking into completed.
func (s *DefaultLifecycleService) Complete(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.StatusCompleted)
}

// Cancel moves any non-terminal booking into cancelled.
func (s *DefaultLifecycleService) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.transition(ctx, bookingID, models.StatusCancelled)
}
