package booking

import (
	"context"
	"errors"
	"testing"

	"huduma/models"
)

func pendingBooking(id string) *models.Booking {
	return &models.Booking{
		ID:          id,
		ServiceID:   "svc-1",
		ServiceName: "House Cleaning",
		CustomerID:  "cust-1",
		BookingDate: "2026-09-10",
		BookingTime: "10:00",
		Quantity:    1,
		TotalAmount: 5000,
		Status:      models.StatusPending,
		Version:     1,
	}
}

func bookingWithStatus(id, status string) *models.Booking {
	b := pendingBooking(id)
	b.Status = status
	return b
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusInProgress, false},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusInProgress, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusInProgress, models.StatusCompleted, true},
		{models.StatusInProgress, models.StatusCancelled, true},
		{models.StatusInProgress, models.StatusConfirmed, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusCompleted, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestLifecycleTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("start moves confirmed to in_progress", func(t *testing.T) {
		repo := newFakeBookingRepo(bookingWithStatus("b1", models.StatusConfirmed))
		svc := &DefaultLifecycleService{Repo: repo}

		updated, err := svc.Start(ctx, "b1")
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		if updated.Status != models.StatusInProgress {
			t.Errorf("status = %q, want %q", updated.Status, models.StatusInProgress)
		}
		if updated.Version != 2 {
			t.Errorf("version = %d, want 2", updated.Version)
		}
	})

	t.Run("complete moves in_progress to completed", func(t *testing.T) {
		repo := newFakeBookingRepo(bookingWithStatus("b1", models.StatusInProgress))
		svc := &DefaultLifecycleService{Repo: repo}

		updated, err := svc.Complete(ctx, "b1")
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if updated.Status != models.StatusCompleted {
			t.Errorf("status = %q, want %q", updated.Status, models.StatusCompleted)
		}
	})

	t.Run("cancel works from every non-terminal status", func(t *testing.T) {
		for _, from := range []string{models.StatusPending, models.StatusConfirmed, models.StatusInProgress} {
			repo := newFakeBookingRepo(bookingWithStatus("b1", from))
			svc := &DefaultLifecycleService{Repo: repo}

			updated, err := svc.Cancel(ctx, "b1")
			if err != nil {
				t.Fatalf("Cancel from %q: %v", from, err)
			}
			if updated.Status != models.StatusCancelled {
				t.Errorf("Cancel from %q: status = %q", from, updated.Status)
			}
		}
	})

	t.Run("terminal statuses reject every transition", func(t *testing.T) {
		for _, from := range []string{models.StatusCompleted, models.StatusCancelled} {
			repo := newFakeBookingRepo(bookingWithStatus("b1", from))
			svc := &DefaultLifecycleService{Repo: repo}

			_, err := svc.Cancel(ctx, "b1")
			var transErr *InvalidTransitionError
			if !errors.As(err, &transErr) {
				t.Fatalf("Cancel from %q: got %v, want InvalidTransitionError", from, err)
			}
			if transErr.From != from || transErr.To != models.StatusCancelled {
				t.Errorf("transition error = %s -> %s, want %s -> %s",
					transErr.From, transErr.To, from, models.StatusCancelled)
			}
		}
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking("b1"))
		svc := &DefaultLifecycleService{Repo: repo}

		_, err := svc.Complete(ctx, "b1")
		var transErr *InvalidTransitionError
		if !errors.As(err, &transErr) {
			t.Fatalf("got %v, want InvalidTransitionError", err)
		}
		if got, _ := repo.GetByID(ctx, "b1"); got.Status != models.StatusPending {
			t.Errorf("booking mutated on rejected transition: status = %q", got.Status)
		}
	})

	t.Run("unknown booking yields NotFoundError", func(t *testing.T) {
		svc := &DefaultLifecycleService{Repo: newFakeBookingRepo()}

		_, err := svc.Start(ctx, "missing")
		var nfErr *NotFoundError
		if !errors.As(err, &nfErr) {
			t.Fatalf("got %v, want NotFoundError", err)
		}
	})
}

func TestTransitionRaceRevalidatesAgainstStoredState(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBookingRepo(bookingWithStatus("b1", models.StatusConfirmed))

	// Another writer cancels the booking between this caller's read and its
	// guarded write. The loser must be judged against the stored status, not
	// its stale read.
	repo.beforeUpdate = func(r *fakeBookingRepo) {
		r.beforeUpdate = nil
		b := r.bookings["b1"]
		b.Status = models.StatusCancelled
		b.Version++
	}

	svc := &DefaultLifecycleService{Repo: repo}
	_, err := svc.Start(ctx, "b1")

	var transErr *InvalidTransitionError
	if !errors.As(err, &transErr) {
		t.Fatalf("got %v, want InvalidTransitionError", err)
	}
	if transErr.From != models.StatusCancelled {
		t.Errorf("transition error From = %q, want %q", transErr.From, models.StatusCancelled)
	}
	if got, _ := repo.GetByID(ctx, "b1"); got.Status != models.StatusCancelled {
		t.Errorf("stored status = %q, want %q", got.Status, models.StatusCancelled)
	}
}
