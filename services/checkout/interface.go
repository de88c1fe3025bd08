package checkout

import (
	"context"

	bookingRepo "huduma/database/repository/booking"
	catalogRepo "huduma/database/repository/catalog"
	"huduma/models"
	"huduma/services/cart"
)

// Routing targets for the post-checkout redirect.
const (
	RouteInvoice      = "invoice"       // single booking created
	RouteOrderSummary = "order-summary" // several bookings created
)

// Schedule carries the customer-chosen slot and contact payload for a
// checkout. Date and time are required.
type Schedule struct {
	Date    string `json:"date"` // "YYYY-MM-DD"
	Time    string `json:"time"` // "HH:MM"
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Result is the outcome of a successful checkout.
type Result struct {
	BookingIDs    []string `json:"booking_ids"` // In cart-line order
	CombinedTotal float64  `json:"combined_total"`
	Route         string   `json:"route"`
}

// CheckoutService converts the customer's cart into persisted bookings.
type CheckoutService interface {
	Checkout(ctx context.Context, identity models.CustomerIdentity, schedule Schedule) (*Result, error)
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	CartSvc     cart.CartService
	CatalogRepo catalogRepo.CatalogRepository
	BookingRepo bookingRepo.BookingRepository
}
