package queries

import (
	"fmt"
	"time"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"

	"github.com/jinzhu/copier"
)

// BookingView is the finalized booking record handed to the UI, receipt, invoice and email renderers.
type BookingView struct {
	SessionID        string                 `json:"sessionId"`
	InvoiceID        string                 `json:"invoiceId"`
	Status           string                 `json:"status"`
	TotalAmountMinor int64                  `json:"totalAmountMinor"`
	Currency         string                 `json:"currency"`
	EmailSent        bool                   `json:"emailSent"`
	Kind             string                 `json:"kind"`
	PickupLocation   string                 `json:"pickupLocation"`
	DropoffLocation  string                 `json:"dropoffLocation,omitempty"`
	VehicleType      string                 `json:"vehicleType,omitempty"`
	Hours            int                    `json:"hours,omitempty"`
	PickupDate       string                 `json:"pickupDate"`
	PickupTime       string                 `json:"pickupTime"`
	Passengers       int                    `json:"passengers"`
	Luggage          int                    `json:"luggage"`
	CustomerName     string                 `json:"customerName"`
	CustomerEmail    string                 `json:"customerEmail"`
	CustomerPhone    string                 `json:"customerPhone"`
	ChildSeats       int                    `json:"childSeats"`
	FlightNumber     string                 `json:"flightNumber,omitempty"`
	Notes            string                 `json:"notes,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	PaidAt           *time.Time             `json:"paidAt,omitempty"`
	Breakdown        pricing.PriceBreakdown `json:"breakdown"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	if b == nil {
		return nil
	}
	var v BookingView
	if err := copier.Copy(&v, b); err != nil {
		panic(fmt.Sprintf("copy booking %s into view: %v", b.SessionID, err))
	}
	v.Status = b.Status.String()
	v.Kind = string(b.Kind)
	v.Breakdown = b.Breakdown()
	return &v
}
