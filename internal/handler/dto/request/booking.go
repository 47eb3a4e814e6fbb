package request

import (
	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
)

// BookingIntentRequest is the checkout form. Field rules live on booking.Intent;
// binding only rejects bodies that are obviously not an intent.
type BookingIntentRequest struct {
	Kind            string `json:"kind" binding:"required"`
	PickupLocation  string `json:"pickupLocation" binding:"required"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`
	VehicleType     string `json:"vehicleType,omitempty"`
	Hours           int    `json:"hours,omitempty"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	Passengers      int    `json:"passengers"`
	Luggage         int    `json:"luggage"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ChildSeats      int    `json:"childSeats"`
	FlightNumber    string `json:"flightNumber,omitempty"`
	Notes           string `json:"notes,omitempty"`
	// Client totals are accepted for display parity but never read.
	TotalAmountMinor *int64 `json:"totalAmountMinor,omitempty" swaggerignore:"true"`
}

func (r BookingIntentRequest) ToIntent() booking.Intent {
	return booking.Intent{
		Kind:            pricing.Kind(r.Kind),
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		VehicleType:     r.VehicleType,
		Hours:           r.Hours,
		PickupDate:      r.PickupDate,
		PickupTime:      r.PickupTime,
		Passengers:      r.Passengers,
		Luggage:         r.Luggage,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ChildSeats:      r.ChildSeats,
		FlightNumber:    r.FlightNumber,
		Notes:           r.Notes,
	}
}

func FromIntent(i booking.Intent) BookingIntentRequest {
	return BookingIntentRequest{
		Kind:            string(i.Kind),
		PickupLocation:  i.PickupLocation,
		DropoffLocation: i.DropoffLocation,
		VehicleType:     i.VehicleType,
		Hours:           i.Hours,
		PickupDate:      i.PickupDate,
		PickupTime:      i.PickupTime,
		Passengers:      i.Passengers,
		Luggage:         i.Luggage,
		CustomerName:    i.CustomerName,
		CustomerEmail:   i.CustomerEmail,
		CustomerPhone:   i.CustomerPhone,
		ChildSeats:      i.ChildSeats,
		FlightNumber:    i.FlightNumber,
		Notes:           i.Notes,
	}
}

// QuoteRequest carries only the fields that affect price.
type QuoteRequest struct {
	Kind            string `json:"kind" binding:"required,oneof=transfer hourly"`
	PickupLocation  string `json:"pickupLocation" binding:"required"`
	DropoffLocation string `json:"dropoffLocation,omitempty"`
	VehicleType     string `json:"vehicleType,omitempty"`
	Hours           int    `json:"hours,omitempty" binding:"min=0,max=24"`
	Passengers      int    `json:"passengers" binding:"min=1,max=11"`
	ChildSeats      int    `json:"childSeats" binding:"min=0,max=3"`
}

func (r QuoteRequest) ToDomain() pricing.QuoteRequest {
	return booking.Intent{
		Kind:            pricing.Kind(r.Kind),
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		VehicleType:     r.VehicleType,
		Hours:           r.Hours,
		Passengers:      r.Passengers,
		ChildSeats:      r.ChildSeats,
	}.Normalize().QuoteRequest()
}

type SessionQueryRequest struct {
	SessionID string `json:"sessionId" binding:"required,max=255"`
}
