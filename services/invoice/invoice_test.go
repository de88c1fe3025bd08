package invoice

import (
	"bytes"
	"testing"

	"huduma/models"
)

func sampleBooking(status string) *models.Booking {
	return &models.Booking{
		ID:            "b1",
		ServiceName:   "House Cleaning",
		CustomerName:  "Neema Juma",
		CustomerPhone: "+255700000001",
		Address:       "12 Uhuru St, Dar es Salaam",
		BookingDate:   "2026-09-10",
		BookingTime:   "10:00",
		Quantity:      2,
		TotalAmount:   100000,
		Status:        status,
	}
}

func TestBuildInvoice(t *testing.T) {
	svc := &DefaultInvoiceService{}

	t.Run("completed booking is due", func(t *testing.T) {
		inv := svc.BuildInvoice(sampleBooking(models.StatusCompleted))
		if inv.Status != "due" {
			t.Errorf("status = %q, want due", inv.Status)
		}
		if inv.Amount != 100000 {
			t.Errorf("amount = %v, want 100000", inv.Amount)
		}
		if inv.BookingID != "b1" {
			t.Errorf("booking id = %q, want b1", inv.BookingID)
		}
		if inv.PaymentMethod != "cash" {
			t.Errorf("payment method = %q, want cash", inv.PaymentMethod)
		}
	})

	t.Run("open booking is unpaid", func(t *testing.T) {
		inv := svc.BuildInvoice(sampleBooking(models.StatusConfirmed))
		if inv.Status != "unpaid" {
			t.Errorf("status = %q, want unpaid", inv.Status)
		}
	})
}

func TestRender(t *testing.T) {
	svc := &DefaultInvoiceService{}

	pdfBytes, err := svc.Render(sampleBooking(models.StatusCompleted))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("Render produced no output")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", pdfBytes[:8])
	}
}
