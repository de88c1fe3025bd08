package models

// CustomerIdentity is the resolved identity used to stamp bookings at
// checkout. Passed explicitly into the orchestrator, never read from
// ambient state.
type CustomerIdentity struct {
	CustomerID string `json:"customer_id"` // Empty for guest-style flows
	Name       string `json:"name"`
	Email      string `json:"email"`
}
