package invoice

import (
	"bytes"
	"fmt"
	"time"

	"huduma/models"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// InvoiceService renders printable invoices from finalized bookings. It is
// a read-only consumer; nothing here feeds back into the booking engine.
type InvoiceService interface {
	BuildInvoice(b *models.Booking) *models.Invoice
	Render(b *models.Booking) ([]byte, error)
}

// DefaultInvoiceService implements InvoiceService.
type DefaultInvoiceService struct{}

// BuildInvoice derives the invoice record for a booking. Payment is
// cash-only; settlement happens outside this system.
func (s *DefaultInvoiceService) BuildInvoice(b *models.Booking) *models.Invoice {
	status := "unpaid"
	if b.Status == models.StatusCompleted {
		status = "due"
	}
	return &models.Invoice{
		InvoiceID:     uuid.New().String(),
		BookingID:     b.ID,
		Amount:        b.TotalAmount,
		PaymentMethod: "cash",
		Status:        status,
		CreatedAt:     time.Now(),
	}
}

// Render produces a single-page A4 invoice PDF for the booking.
func (s *DefaultInvoiceService) Render(b *models.Booking) ([]byte, error) {
	inv := s.BuildInvoice(b)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "HUDUMA SERVICE INVOICE")
	pdf.Ln(20)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	// Booking summary box with QR
	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 60, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice ID: %s", inv.InvoiceID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Booking ID: %s", b.ID))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Service: %s", b.ServiceName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Quantity: %d", b.Quantity))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total Due: TSh %.2f", b.TotalAmount))

	qrBytes, err := qrcode.Encode(b.ID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice QR: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+8, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 68)

	// Schedule
	drawSectionTitle(pdf, "SCHEDULE")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s at %s", b.BookingDate, b.BookingTime))
	pdf.Ln(6)
	if b.ProviderName != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Provider: %s", b.ProviderName))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Customer
	drawSectionTitle(pdf, "CUSTOMER")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", b.CustomerName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Phone: %s", b.CustomerPhone))
	pdf.Ln(6)
	pdf.MultiCell(0, 8, fmt.Sprintf("Address: %s", b.Address), "", "", false)
	pdf.Ln(4)

	// Payment
	drawSectionTitle(pdf, "PAYMENT")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, "Method: Cash on completion")
	pdf.Ln(6)
	if b.Notes != "" {
		pdf.MultiCell(0, 8, fmt.Sprintf("Notes: %s", b.Notes), "", "", false)
	}

	// Footer
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Huduma Services - asante kwa kutumia huduma zetu", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawSectionTitle adds consistent section headers
func drawSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
}
