package booking

import (
	"strings"

	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/errs"
)

var ErrInvalidIntent = errs.New("invalid booking intent")

// Intent is the customer's requested trip. It is immutable once submitted to checkout.
type Intent struct {
	Kind            pricing.Kind `json:"kind" validate:"required,oneof=transfer hourly"`
	PickupLocation  string       `json:"pickupLocation" validate:"required,max=200"`
	DropoffLocation string       `json:"dropoffLocation,omitempty" validate:"required_if=Kind transfer,max=200"`
	VehicleType     string       `json:"vehicleType,omitempty" validate:"required_if=Kind hourly,max=40"`
	Hours           int          `json:"hours,omitempty" validate:"max=24"`
	PickupDate      string       `json:"pickupDate" validate:"required,datetime=2006-01-02"`
	PickupTime      string       `json:"pickupTime" validate:"required,datetime=15:04"`
	Passengers      int          `json:"passengers" validate:"min=1,max=11"`
	Luggage         int          `json:"luggage" validate:"min=0,max=20"`
	CustomerName    string       `json:"customerName" validate:"required,max=120"`
	CustomerEmail   string       `json:"customerEmail" validate:"required,email,max=254"`
	CustomerPhone   string       `json:"customerPhone" validate:"required,max=40"`
	ChildSeats      int          `json:"childSeats" validate:"min=0,max=3"`
	FlightNumber    string       `json:"flightNumber,omitempty" validate:"max=20"`
	Notes           string       `json:"notes,omitempty" validate:"max=500"`
}

func (i Intent) Normalize() Intent {
	i.Kind = pricing.Kind(strings.ToLower(strings.TrimSpace(string(i.Kind))))
	i.PickupLocation = strings.TrimSpace(i.PickupLocation)
	i.DropoffLocation = strings.TrimSpace(i.DropoffLocation)
	i.VehicleType = strings.ToLower(strings.TrimSpace(i.VehicleType))
	i.PickupDate = strings.TrimSpace(i.PickupDate)
	i.PickupTime = strings.TrimSpace(i.PickupTime)
	i.CustomerName = strings.TrimSpace(i.CustomerName)
	i.CustomerEmail = strings.ToLower(strings.TrimSpace(i.CustomerEmail))
	i.CustomerPhone = strings.TrimSpace(i.CustomerPhone)
	i.FlightNumber = strings.ToUpper(strings.TrimSpace(i.FlightNumber))
	i.Notes = strings.TrimSpace(i.Notes)
	return i
}

// Validate returns an error marked ErrInvalidIntent; FieldErrors extracts per-field messages.
func (i Intent) Validate() error {
	if err := validate.Struct(i); err != nil {
		return errs.Mark(errs.Wrap(err, "intent validation"), ErrInvalidIntent)
	}
	return nil
}

func (i Intent) QuoteRequest() pricing.QuoteRequest {
	return pricing.QuoteRequest{
		Kind:            i.Kind,
		PickupLocation:  i.PickupLocation,
		DropoffLocation: i.DropoffLocation,
		VehicleType:     i.VehicleType,
		Hours:           i.Hours,
		Passengers:      i.Passengers,
		ChildSeats:      i.ChildSeats,
	}
}

// Summary is a one-line trip description for line items and email subjects.
func (i Intent) Summary() string {
	if i.Kind == pricing.KindHourly {
		return "Hourly charter from " + i.PickupLocation + " on " + i.PickupDate + " " + i.PickupTime
	}
	return i.PickupLocation + " to " + i.DropoffLocation + " on " + i.PickupDate + " " + i.PickupTime
}
