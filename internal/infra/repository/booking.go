package repository

import (
	"context"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/infra"
	"transfer-booking/internal/infra/db"
	"transfer-booking/internal/infra/repository/converter"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
)

// Status advances only from PENDING; amount, currency and paid_at move only on PENDING -> PAID.
// Descriptive columns and invoice_id keep their first-inserted values.
var upsertBookingSQL = `
INSERT INTO bookings (
	session_id, invoice_id, status, total_amount_minor, currency, email_sent,
	kind, pickup_location, dropoff_location, vehicle_type, hours, pickup_date, pickup_time,
	passengers, luggage, customer_name, customer_email, customer_phone, child_seats,
	flight_number, notes, created_at, updated_at, paid_at
) VALUES (
	$1, $2, $3, $4, $5, false,
	$6, $7, $8, $9, $10, $11, $12,
	$13, $14, $15, $16, $17, $18,
	$19, $20, $21, $21, $22
)
ON CONFLICT (session_id) DO UPDATE SET
	status = CASE
		WHEN bookings.status = 'PENDING' AND EXCLUDED.status IN ('PAID', 'CANCELLED') THEN EXCLUDED.status
		ELSE bookings.status END,
	total_amount_minor = CASE
		WHEN bookings.status = 'PENDING' AND EXCLUDED.status = 'PAID' THEN EXCLUDED.total_amount_minor
		ELSE bookings.total_amount_minor END,
	currency = CASE
		WHEN bookings.status = 'PENDING' AND EXCLUDED.status = 'PAID' THEN EXCLUDED.currency
		ELSE bookings.currency END,
	paid_at = CASE
		WHEN bookings.status = 'PENDING' AND EXCLUDED.status = 'PAID' THEN EXCLUDED.created_at
		ELSE bookings.paid_at END,
	updated_at = CASE
		WHEN bookings.status = 'PENDING' AND EXCLUDED.status IN ('PAID', 'CANCELLED') THEN EXCLUDED.created_at
		ELSE bookings.updated_at END
RETURNING ` + converter.BookingColumns

var gateBookingSQL = `
UPDATE bookings
SET status = 'PAID', email_sent = true, paid_at = COALESCE(paid_at, $2), updated_at = $2
WHERE session_id = $1 AND status IN ('PENDING', 'PAID') AND email_sent = false
RETURNING ` + converter.BookingColumns

var findBookingSQL = `SELECT ` + converter.BookingColumns + ` FROM bookings WHERE session_id = $1`

type BookingRepository struct {
	db    db.Pool
	clock clock.Clock
}

func NewBookingRepository(pool db.Pool, clk clock.Clock) *BookingRepository {
	return &BookingRepository{
		db:    pool,
		clock: clk,
	}
}

func (r *BookingRepository) UpsertFromIntent(
	ctx context.Context,
	sessionID string,
	intent booking.Intent,
	amount pricing.Money,
	status booking.Status,
) (*booking.Booking, error) {
	candidate, err := booking.NewBooking(sessionID, intent, amount, status, r.clock.Now())
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, upsertBookingSQL, converter.BookingInsertArgs(candidate)...)
	b, err := converter.ScanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert booking", err)
	}
	return b, nil
}

func (r *BookingRepository) MarkPaidAndGate(ctx context.Context, sessionID string) (*booking.GateResult, error) {
	now := pgconv.TimeToPgtype(r.clock.Now())

	return db.RunInTxWithRetry(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx db.DBTX) (*booking.GateResult, error) {
		b, err := converter.ScanBooking(tx.QueryRow(ctx, gateBookingSQL, sessionID, now))
		if err == nil {
			return &booking.GateResult{Booking: b, EmailGateOpen: true}, nil
		}
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to gate booking", err)
		}

		current, err := findBooking(ctx, tx, sessionID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, infra.WrapRepoErr("booking not found", errs.ErrBookingNotFound, infra.KindNotFound)
		}
		return &booking.GateResult{Booking: current, EmailGateOpen: false}, nil
	})
}

func (r *BookingRepository) FindBySession(ctx context.Context, sessionID string) (*booking.Booking, error) {
	return findBooking(ctx, r.db, sessionID)
}

func findBooking(ctx context.Context, q db.DBTX, sessionID string) (*booking.Booking, error) {
	b, err := converter.ScanBooking(q.QueryRow(ctx, findBookingSQL, sessionID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking by session", err)
	}
	return b, nil
}
