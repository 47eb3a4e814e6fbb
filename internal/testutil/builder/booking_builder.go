//go:build unit || e2e

package builder

import (
	"time"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	reqdto "transfer-booking/internal/handler/dto/request"
)

type BookingBuilder struct {
	SessionID string
	Status    booking.Status
	Amount    int64
	Currency  string
	Now       time.Time
	Intent    booking.Intent
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SessionID: "cs_test_a1b2c3",
		Status:    booking.StatusPending,
		Amount:    9785,
		Currency:  "aud",
		Now:       time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Intent:    NewTransferIntent(),
	}
}

func NewTransferIntent() booking.Intent {
	return booking.Intent{
		Kind:            pricing.KindTransfer,
		PickupLocation:  "Sydney Airport",
		DropoffLocation: "Sydney CBD",
		PickupDate:      "2026-04-02",
		PickupTime:      "07:45",
		Passengers:      2,
		Luggage:         3,
		CustomerName:    "Alex Morgan",
		CustomerEmail:   "alex@example.com",
		CustomerPhone:   "+61 400 000 000",
		FlightNumber:    "QF12",
	}
}

func NewHourlyIntent() booking.Intent {
	return booking.Intent{
		Kind:           pricing.KindHourly,
		PickupLocation: "Circular Quay",
		VehicleType:    "suv",
		Hours:          3,
		PickupDate:     "2026-05-10",
		PickupTime:     "10:00",
		Passengers:     5,
		CustomerName:   "Sam Lee",
		CustomerEmail:  "sam@example.com",
		CustomerPhone:  "0400 111 222",
		ChildSeats:     1,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSessionID(id string) *BookingBuilder {
	b.SessionID = id
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithIntent(i booking.Intent) *BookingBuilder {
	b.Intent = i
	return b
}

func (b *BookingBuilder) Money() pricing.Money {
	return pricing.NewMoney(b.Amount, b.Currency)
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	bk, err := booking.NewBooking(b.SessionID, b.Intent, b.Money(), b.Status, b.Now)
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingIntentRequest {
	return reqdto.FromIntent(b.Intent)
}
