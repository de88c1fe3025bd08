package booking

import (
	"context"
	"math"
	"sort"
	"time"

	bookingRepo "huduma/database/repository/booking"
	"huduma/models"
)

// Urgency tiers for the operator task queue.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// QueueEntry is a pending booking annotated for operator triage.
type QueueEntry struct {
	Booking  models.Booking `json:"booking"`
	Urgency  string         `json:"urgency"`
	Category string         `json:"category"`
}

var urgencyRank = map[string]int{
	UrgencyHigh:   0,
	UrgencyMedium: 1,
	UrgencyLow:    2,
}

// DetermineUrgency grades how soon a booking is scheduled: within one day
// is high, within three days medium, otherwise low.
func DetermineUrgency(scheduled, now time.Time) string {
	diffDays := math.Ceil(scheduled.Sub(now).Hours() / 24)
	switch {
	case diffDays <= 1:
		return UrgencyHigh
	case diffDays <= 3:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// SortQueue orders entries by urgency (high first), then by scheduled date
// ascending within the same tier. Display ordering only.
func SortQueue(entries []QueueEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := urgencyRank[entries[i].Urgency], urgencyRank[entries[j].Urgency]
		if ri != rj {
			return ri < rj
		}
		di, _ := entries[i].Booking.ScheduledAt()
		dj, _ := entries[j].Booking.ScheduledAt()
		return di.Before(dj)
	})
}

// PendingQueue returns all pending bookings sorted for the task-assignment
// view, each annotated with its urgency tier and derived category.
func (s *DefaultAssignmentService) PendingQueue(ctx context.Context) ([]QueueEntry, error) {
	pending, err := s.Repo.List(ctx, bookingRepo.ListFilter{Status: models.StatusPending})
	if err != nil {
		return nil, NewRepositoryError("failed to list pending bookings", err)
	}

	now := time.Now()
	entries := make([]QueueEntry, 0, len(pending))
	for _, b := range pending {
		scheduled, err := b.ScheduledAt()
		if err != nil {
			scheduled = now
		}
		category, err := s.deriveCategory(ctx, &b)
		if err != nil {
			return nil, err
		}
		entries = append(entries, QueueEntry{
			Booking:  b,
			Urgency:  DetermineUrgency(scheduled, now),
			Category: category,
		})
	}
	SortQueue(entries)
	return entries, nil
}
