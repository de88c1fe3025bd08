package checkout

import (
	"context"
	"errors"
	"time"

	catalogRepo "huduma/database/repository/catalog"
	"huduma/models"
	"huduma/services/booking"
	"huduma/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Checkout turns each cart line into one pending booking, priced from the
// catalog at checkout time. The whole multi-line creation is a single
// transactional write: on any failure nothing is persisted and the cart is
// left intact for retry.
func (s *DefaultCheckoutService) Checkout(ctx context.Context, identity models.CustomerIdentity, schedule Schedule) (*Result, error) {
	logger := utils.GetLogger()

	if schedule.Date == "" {
		return nil, booking.NewValidationError("a service date is required")
	}
	if schedule.Time == "" {
		return nil, booking.NewValidationError("a service time is required")
	}

	c, err := s.CartSvc.Get(ctx, identity.CustomerID)
	if err != nil {
		return nil, booking.NewRepositoryError("failed to load cart", err)
	}
	if len(c.Lines) == 0 {
		return nil, booking.NewValidationError("cart is empty")
	}

	now := time.Now()
	drafts := make([]*models.Booking, 0, len(c.Lines))
	var combined float64
	for _, line := range c.Lines {
		// The catalog is the pricing oracle; the cart's cached unit price
		// is display-only and never trusted here.
		svc, err := s.CatalogRepo.GetByID(ctx, line.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrNotFound) {
				return nil, booking.NewNotFoundError("service " + line.ServiceID + " no longer exists")
			}
			return nil, booking.NewRepositoryError("failed to price cart line", err)
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		total := svc.BasePrice * float64(quantity)
		combined += total

		drafts = append(drafts, &models.Booking{
			ID:            uuid.New().String(),
			ServiceID:     svc.ID,
			ServiceName:   svc.NameEn,
			CustomerID:    identity.CustomerID,
			CustomerName:  identity.Name,
			CustomerEmail: identity.Email,
			CustomerPhone: schedule.Phone,
			Address:       schedule.Address,
			BookingDate:   schedule.Date,
			BookingTime:   schedule.Time,
			Quantity:      quantity,
			TotalAmount:   total,
			Status:        models.StatusPending,
			Notes:         schedule.Notes,
			Version:       1,
			CreatedAt:     now,
		})
	}

	if err := s.BookingRepo.CreateAll(ctx, drafts); err != nil {
		// Nothing was persisted; the caller may retry with the cart intact.
		return nil, booking.NewRepositoryError("failed to create bookings", err)
	}

	ids := make([]string, len(drafts))
	for i, d := range drafts {
		ids[i] = d.ID
	}

	// Cleared exactly once, after the bookings are durable. A failed clear
	// is logged rather than surfaced: the bookings exist, and failing the
	// checkout here would invite a duplicate submission.
	if err := s.CartSvc.Clear(ctx, identity.CustomerID); err != nil {
		logger.Warn("failed to clear cart after checkout",
			zap.String("customerID", identity.CustomerID), zap.Error(err))
	}

	route := RouteOrderSummary
	if len(ids) == 1 {
		route = RouteInvoice
	}

	logger.Info("checkout completed",
		zap.String("customerID", identity.CustomerID),
		zap.Int("bookings", len(ids)),
		zap.Float64("combinedTotal", combined))

	return &Result{
		BookingIDs:    ids,
		CombinedTotal: combined,
		Route:         route,
	}, nil
}
