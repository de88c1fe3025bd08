package handlers

import (
	"net/http"

	"huduma/services/booking"
	"huduma/services/invoice"
	"huduma/utils"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler renders invoices for finalized bookings.
type InvoiceHandler struct {
	Lifecycle  booking.LifecycleService
	InvoiceSvc invoice.InvoiceService
}

// NewInvoiceHandler constructs an InvoiceHandler.
func NewInvoiceHandler(lifecycle booking.LifecycleService, svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Lifecycle: lifecycle, InvoiceSvc: svc}
}

// Download streams the booking's invoice as a PDF document.
func (h *InvoiceHandler) Download(c *gin.Context) {
	b, err := h.Lifecycle.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdfBytes, err := h.InvoiceSvc.Render(b)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render invoice", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice-`+b.ID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
