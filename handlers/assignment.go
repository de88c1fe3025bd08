package handlers

import (
	"net/http"

	"huduma/services/booking"
	"huduma/utils"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler serves the operator task-assignment view.
type AssignmentHandler struct {
	AssignmentSvc booking.AssignmentService
}

// NewAssignmentHandler constructs an AssignmentHandler.
func NewAssignmentHandler(svc booking.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{AssignmentSvc: svc}
}

// PendingQueue lists pending bookings ordered for triage (urgency first,
// then scheduled date).
func (h *AssignmentHandler) PendingQueue(c *gin.Context) {
	entries, err := h.AssignmentSvc.PendingQueue(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"queue": entries})
}

// Candidates returns the matched providers for a pending booking. An empty
// candidate list is a normal outcome the operator needs to see, not an error.
func (h *AssignmentHandler) Candidates(c *gin.Context) {
	candidates, err := h.AssignmentSvc.Candidates(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// Assign binds the selected provider to the booking and confirms it.
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var input struct {
		ProviderID string `json:"provider_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	b, err := h.AssignmentSvc.Assign(c.Request.Context(), c.Param("bookingId"), input.ProviderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
