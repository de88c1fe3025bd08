package handlers

import (
	"net/http"

	bookingRepo "huduma/database/repository/booking"
	"huduma/middleware"
	"huduma/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking reads and operator lifecycle actions.
type BookingHandler struct {
	Lifecycle booking.LifecycleService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(lifecycle booking.LifecycleService) *BookingHandler {
	return &BookingHandler{Lifecycle: lifecycle}
}

// GetBooking returns one booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Lifecycle.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings lists bookings. Customers only ever see their own;
// operators may filter by status, service, or unassigned.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Status:         c.Query("status"),
		ServiceID:      c.Query("serviceId"),
		UnassignedOnly: c.Query("unassigned") == "true",
	}

	role := c.GetString(middleware.CtxRole)
	if role == "admin" || role == "operator" {
		filter.CustomerID = c.Query("customerId")
		filter.ProviderID = c.Query("providerId")
	} else {
		filter.CustomerID = c.GetString(middleware.CtxUserID)
	}

	bookings, err := h.Lifecycle.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// StartBooking moves a confirmed booking into in_progress.
func (h *BookingHandler) StartBooking(c *gin.Context) {
	b, err := h.Lifecycle.Start(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBooking moves an in_progress booking into completed.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	b, err := h.Lifecycle.Complete(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking cancels any non-terminal booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	b, err := h.Lifecycle.Cancel(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
