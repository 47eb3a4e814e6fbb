package artifact

import (
	"fmt"
	"strings"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
)

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Message struct {
	From        string
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

type Composer struct {
	from     string
	admin    string
	business string
}

func NewComposer(from, admin, business string) *Composer {
	return &Composer{from: from, admin: admin, business: business}
}

func (c *Composer) CustomerConfirmation(b *booking.Booking, invoicePDF []byte) Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", b.CustomerName)
	fmt.Fprintf(&body, "Your booking with %s is confirmed.\n\n", c.business)
	writeSummary(&body, b)
	body.WriteString("\nYour tax invoice is attached.\n")

	msg := Message{
		From:    c.from,
		To:      []string{b.CustomerEmail},
		Subject: fmt.Sprintf("Booking confirmed: %s", b.InvoiceID),
		Body:    body.String(),
	}
	if len(invoicePDF) > 0 {
		msg.Attachments = []Attachment{{
			Filename:    b.InvoiceID + ".pdf",
			ContentType: "application/pdf",
			Data:        invoicePDF,
		}}
	}
	return msg
}

func (c *Composer) AdminNotification(b *booking.Booking) Message {
	var body strings.Builder
	fmt.Fprintf(&body, "New paid booking from %s <%s>, %s\n\n", b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	writeSummary(&body, b)
	fmt.Fprintf(&body, "\nSession: %s\n", b.SessionID)

	return Message{
		From:    c.from,
		To:      []string{c.admin},
		Subject: fmt.Sprintf("New booking %s (%s)", b.InvoiceID, pricing.FormatMinor(b.TotalAmountMinor)),
		Body:    body.String(),
	}
}

func writeSummary(w *strings.Builder, b *booking.Booking) {
	fmt.Fprintf(w, "Invoice: %s\n", b.InvoiceID)
	for _, line := range TripLines(b) {
		w.WriteString(line + "\n")
	}
	w.WriteString("\n")
	for _, row := range AmountRows(b.Breakdown()) {
		fmt.Fprintf(w, "%s: %s\n", row[0], row[1])
	}
	fmt.Fprintf(w, "Total paid: %s %s\n", pricing.FormatMinor(b.TotalAmountMinor), strings.ToUpper(b.Currency))
}
