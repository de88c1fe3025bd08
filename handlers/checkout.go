package handlers

import (
	"net/http"

	"huduma/middleware"
	"huduma/models"
	"huduma/services/checkout"
	"huduma/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler turns the caller's cart into bookings.
type CheckoutHandler struct {
	CheckoutSvc checkout.CheckoutService
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(svc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{CheckoutSvc: svc}
}

// Checkout creates one pending booking per cart line and returns the
// ordered booking ids plus a routing hint (invoice vs order summary).
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var input struct {
		Schedule checkout.Schedule `json:"schedule"`
		Name     string            `json:"name"`
		Email    string            `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	identity := models.CustomerIdentity{
		CustomerID: c.GetString(middleware.CtxUserID),
		Name:       input.Name,
		Email:      input.Email,
	}
	if identity.Name == "" {
		identity.Name = c.GetString(middleware.CtxName)
	}
	if identity.Email == "" {
		identity.Email = c.GetString(middleware.CtxEmail)
	}

	result, err := h.CheckoutSvc.Checkout(c.Request.Context(), identity, input.Schedule)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
