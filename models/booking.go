package models

import "time"

// Booking statuses. A booking starts out pending and moves forward only;
// completed and cancelled are terminal.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking represents a persisted, priced, scheduled service request.
type Booking struct {
	ID          string `bson:"id" json:"id"`                     // Unique booking identifier (UUID)
	ServiceID   string `bson:"service_id" json:"service_id"`     // Service being booked
	ServiceName string `bson:"service_name" json:"service_name"` // Denormalized for display and category derivation

	CustomerID   string `bson:"customer_id,omitempty" json:"customer_id,omitempty"`   // Empty for guest-style flows
	ProviderID   string `bson:"provider_id,omitempty" json:"provider_id,omitempty"`   // Empty until assigned
	ProviderName string `bson:"provider_name,omitempty" json:"provider_name,omitempty"`

	// Contact snapshot captured at creation time. Never re-synced from the
	// customer profile; a booking is a point-in-time contract.
	CustomerName  string `bson:"customer_name" json:"customer_name"`
	CustomerEmail string `bson:"customer_email" json:"customer_email"`
	CustomerPhone string `bson:"customer_phone" json:"customer_phone"`
	Address       string `bson:"address" json:"address"`

	BookingDate string `bson:"booking_date" json:"booking_date"` // "YYYY-MM-DD"
	BookingTime string `bson:"booking_time" json:"booking_time"` // "HH:MM"

	Quantity    int     `bson:"quantity" json:"quantity"`         // Units booked, always >= 1
	TotalAmount float64 `bson:"total_amount" json:"total_amount"` // Catalog price at creation x quantity, frozen
	Status      string  `bson:"status" json:"status"`
	Notes       string  `bson:"notes,omitempty" json:"notes,omitempty"`

	Version   int64     `bson:"version" json:"version"` // Incremented on every update
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Terminal reports whether no further transitions are possible.
func (b *Booking) Terminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// ScheduledAt parses the booking's date and time into a single instant.
// The time portion is ignored when it does not parse.
func (b *Booking) ScheduledAt() (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04", b.BookingDate+" "+b.BookingTime); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", b.BookingDate)
}
