package handlers

import (
	"errors"
	"net/http"

	catalogRepo "huduma/database/repository/catalog"
	"huduma/middleware"
	"huduma/models"
	"huduma/services/cart"
	"huduma/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes the customer's cart.
type CartHandler struct {
	CartSvc     cart.CartService
	CatalogRepo catalogRepo.CatalogRepository
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(cartSvc cart.CartService, catalog catalogRepo.CatalogRepository) *CartHandler {
	return &CartHandler{CartSvc: cartSvc, CatalogRepo: catalog}
}

// AddToCart adds one unit of a service to the cart, copying the display
// snapshot from the catalog at add-time.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input struct {
		ServiceID string `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	svc, err := h.CatalogRepo.GetByID(c.Request.Context(), input.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", "service does not exist")
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Storage failure", err.Error())
		return
	}

	customerID := c.GetString(middleware.CtxUserID)
	updated, err := h.CartSvc.AddLine(c.Request.Context(), customerID, models.CartLine{
		ServiceID:       svc.ID,
		Name:            svc.NameEn,
		UnitPrice:       svc.BasePrice,
		DurationMinutes: svc.DurationMinutes,
		ImageURL:        svc.ImageURL,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": updated, "total": updated.Total()})
}

// RemoveFromCart removes the line for a service; absent lines are a no-op.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	customerID := c.GetString(middleware.CtxUserID)
	updated, err := h.CartSvc.RemoveLine(c.Request.Context(), customerID, c.Param("serviceId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": updated, "total": updated.Total()})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	customerID := c.GetString(middleware.CtxUserID)
	updated, err := h.CartSvc.SetQuantity(c.Request.Context(), customerID, c.Param("serviceId"), input.Quantity)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": updated, "total": updated.Total()})
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	customerID := c.GetString(middleware.CtxUserID)
	if err := h.CartSvc.Clear(c.Request.Context(), customerID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// GetCart returns the current cart with its running total.
func (h *CartHandler) GetCart(c *gin.Context) {
	customerID := c.GetString(middleware.CtxUserID)
	current, err := h.CartSvc.Get(c.Request.Context(), customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": current, "total": current.Total(), "item_count": current.ItemCount()})
}
