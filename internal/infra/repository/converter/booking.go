package converter

import (
	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingColumns is the select list matching BookingRow.ScanTargets.
const BookingColumns = `session_id, invoice_id, status, total_amount_minor, currency, email_sent,
	kind, pickup_location, dropoff_location, vehicle_type, hours, pickup_date, pickup_time,
	passengers, luggage, customer_name, customer_email, customer_phone, child_seats,
	flight_number, notes, created_at, updated_at, paid_at`

type BookingRow struct {
	SessionID        string
	InvoiceID        string
	Status           string
	TotalAmountMinor int64
	Currency         string
	EmailSent        bool
	Kind             string
	PickupLocation   string
	DropoffLocation  pgtype.Text
	VehicleType      pgtype.Text
	Hours            int32
	PickupDate       string
	PickupTime       string
	Passengers       int32
	Luggage          int32
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	ChildSeats       int32
	FlightNumber     pgtype.Text
	Notes            pgtype.Text
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
	PaidAt           pgtype.Timestamptz
}

func (r *BookingRow) ScanTargets() []any {
	return []any{
		&r.SessionID, &r.InvoiceID, &r.Status, &r.TotalAmountMinor, &r.Currency, &r.EmailSent,
		&r.Kind, &r.PickupLocation, &r.DropoffLocation, &r.VehicleType, &r.Hours, &r.PickupDate, &r.PickupTime,
		&r.Passengers, &r.Luggage, &r.CustomerName, &r.CustomerEmail, &r.CustomerPhone, &r.ChildSeats,
		&r.FlightNumber, &r.Notes, &r.CreatedAt, &r.UpdatedAt, &r.PaidAt,
	}
}

func ScanBooking(row pgx.Row) (*booking.Booking, error) {
	var r BookingRow
	if err := row.Scan(r.ScanTargets()...); err != nil {
		return nil, err
	}
	return BookingToDomain(r)
}

func BookingToDomain(r BookingRow) (*booking.Booking, error) {
	status, err := booking.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	return &booking.Booking{
		SessionID:        r.SessionID,
		InvoiceID:        r.InvoiceID,
		Status:           status,
		TotalAmountMinor: r.TotalAmountMinor,
		Currency:         r.Currency,
		EmailSent:        r.EmailSent,
		Kind:             pricing.Kind(r.Kind),
		PickupLocation:   r.PickupLocation,
		DropoffLocation:  pgconv.StringFromPgtype(r.DropoffLocation),
		VehicleType:      pgconv.StringFromPgtype(r.VehicleType),
		Hours:            int(r.Hours),
		PickupDate:       r.PickupDate,
		PickupTime:       r.PickupTime,
		Passengers:       int(r.Passengers),
		Luggage:          int(r.Luggage),
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		ChildSeats:       int(r.ChildSeats),
		FlightNumber:     pgconv.StringFromPgtype(r.FlightNumber),
		Notes:            pgconv.StringFromPgtype(r.Notes),
		CreatedAt:        pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(r.UpdatedAt),
		PaidAt:           pgconv.TimePtrFromPgtype(r.PaidAt),
	}, nil
}

// BookingInsertArgs orders values for the upsert statement ($1..$22).
func BookingInsertArgs(b *booking.Booking) []any {
	return []any{
		b.SessionID,
		b.InvoiceID,
		string(b.Status),
		b.TotalAmountMinor,
		b.Currency,
		string(b.Kind),
		b.PickupLocation,
		pgconv.OptionalStringToPgtype(b.DropoffLocation),
		pgconv.OptionalStringToPgtype(b.VehicleType),
		int32(b.Hours),
		b.PickupDate,
		b.PickupTime,
		int32(b.Passengers),
		int32(b.Luggage),
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		int32(b.ChildSeats),
		pgconv.OptionalStringToPgtype(b.FlightNumber),
		pgconv.OptionalStringToPgtype(b.Notes),
		pgconv.TimeToPgtype(b.CreatedAt),
		pgconv.TimePtrToPgtype(b.PaidAt),
	}
}
