package artifact

import (
	"bytes"
	"fmt"
	"strings"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/errs"

	"github.com/phpdave11/gofpdf"
)

// PDFInvoiceRenderer draws the tax invoice. Every figure comes from pricing.Breakdown so the
// PDF matches the receipt page and the email to the cent.
type PDFInvoiceRenderer struct {
	issuer string
}

func NewPDFInvoiceRenderer(issuer string) *PDFInvoiceRenderer {
	return &PDFInvoiceRenderer{issuer: issuer}
}

func (r *PDFInvoiceRenderer) RenderInvoice(b *booking.Booking) ([]byte, error) {
	if b == nil {
		return nil, errs.New("nil booking")
	}
	bd := b.Breakdown()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Tax Invoice "+b.InvoiceID, false)
	pdf.SetAuthor(r.issuer, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TAX INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, r.issuer)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Invoice No : "+b.InvoiceID)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Issued     : "+issuedAt(b))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Reference  : "+b.SessionID)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, b.CustomerName)
	pdf.Ln(6)
	pdf.Cell(0, 6, b.CustomerEmail+"  "+b.CustomerPhone)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range TripLines(b) {
		pdf.MultiCell(0, 6, line, "", "", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Amounts ("+strings.ToUpper(b.Currency)+")")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range AmountRows(bd) {
		pdf.CellFormat(120, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Total paid", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, pricing.FormatMinor(bd.TotalPaid), "T", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Service total includes GST. The card processing fee is not subject to GST.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrapf(err, "write invoice %s", b.InvoiceID)
	}
	return buf.Bytes(), nil
}

// TripLines describes the trip for the invoice body and emails.
func TripLines(b *booking.Booking) []string {
	lines := []string{}
	if b.Kind == pricing.KindHourly {
		lines = append(lines,
			fmt.Sprintf("Hourly charter (%s, %dh) from %s", b.VehicleType, b.Hours, b.PickupLocation))
	} else {
		lines = append(lines, fmt.Sprintf("Transfer %s to %s", b.PickupLocation, b.DropoffLocation))
	}
	lines = append(lines,
		fmt.Sprintf("Pickup %s at %s", b.PickupDate, b.PickupTime),
		fmt.Sprintf("Passengers %d, luggage %d, child seats %d", b.Passengers, b.Luggage, b.ChildSeats),
	)
	if b.FlightNumber != "" {
		lines = append(lines, "Flight "+b.FlightNumber)
	}
	if b.Notes != "" {
		lines = append(lines, "Notes: "+b.Notes)
	}
	return lines
}

// AmountRows lists the breakdown as label/value pairs, excluding the total.
func AmountRows(bd pricing.PriceBreakdown) [][2]string {
	return [][2]string{
		{"Subtotal (ex GST)", pricing.FormatMinor(bd.SubtotalExGST)},
		{"GST", pricing.FormatMinor(bd.GST)},
		{"Service total", pricing.FormatMinor(bd.ServiceTotal)},
		{"Card processing fee", pricing.FormatMinor(bd.ProcessingFee)},
	}
}

func issuedAt(b *booking.Booking) string {
	t := b.CreatedAt
	if b.PaidAt != nil {
		t = *b.PaidAt
	}
	return t.Format("2006-01-02")
}
