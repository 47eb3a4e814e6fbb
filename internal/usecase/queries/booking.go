package queries

//go:generate mockgen -source=booking.go -destination=../../mock/queries/mock_booking.go -package=queriesmock

import (
	"context"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/pkg/errs"
)

var ErrInvoiceUnavailable = errs.New("invoice is only available for paid bookings")

type BookingReader interface {
	FindBySession(ctx context.Context, sessionID string) (*booking.Booking, error)
}

// InvoiceRenderer turns a finalized booking into a PDF document.
type InvoiceRenderer interface {
	RenderInvoice(b *booking.Booking) ([]byte, error)
}

type InvoiceDocument struct {
	Filename string
	Content  []byte
}

type BookingQueries interface {
	GetBySession(ctx context.Context, sessionID string) (*BookingView, error)
	Invoice(ctx context.Context, sessionID string) (*InvoiceDocument, error)
}

type bookingQueriesImpl struct {
	reader   BookingReader
	renderer InvoiceRenderer
}

func NewBookingQueries(reader BookingReader, renderer InvoiceRenderer) BookingQueries {
	return &bookingQueriesImpl{reader: reader, renderer: renderer}
}

func (q *bookingQueriesImpl) GetBySession(ctx context.Context, sessionID string) (*BookingView, error) {
	b, err := q.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) Invoice(ctx context.Context, sessionID string) (*InvoiceDocument, error) {
	b, err := q.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if b.Status != booking.StatusPaid {
		return nil, ErrInvoiceUnavailable
	}

	pdf, err := q.renderer.RenderInvoice(b)
	if err != nil {
		return nil, errs.Wrapf(err, "render invoice %s", b.InvoiceID)
	}
	return &InvoiceDocument{
		Filename: b.InvoiceID + ".pdf",
		Content:  pdf,
	}, nil
}

func (q *bookingQueriesImpl) find(ctx context.Context, sessionID string) (*booking.Booking, error) {
	b, err := q.reader.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errs.ErrBookingNotFound
	}
	return b, nil
}
