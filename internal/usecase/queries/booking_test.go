//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/infra/memstore"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/testutil/builder"
	"transfer-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	calls int
	err   error
}

func (r *stubRenderer) RenderInvoice(b *booking.Booking) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-" + b.InvoiceID), nil
}

func seed(t *testing.T, store *memstore.BookingStore, sessionID string, status booking.Status) *booking.Booking {
	t.Helper()
	b, err := store.UpsertFromIntent(context.Background(), sessionID, builder.NewTransferIntent(), pricing.NewMoney(9785, "aud"), status)
	require.NoError(t, err)
	return b
}

func TestBookingQueries_GetBySession(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewBookingStore(clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)))
	q := queries.NewBookingQueries(store, &stubRenderer{})

	stored := seed(t, store, "cs_test_view", booking.StatusPending)

	view, err := q.GetBySession(ctx, "cs_test_view")
	require.NoError(t, err)
	assert.Equal(t, "PENDING", view.Status)
	assert.Equal(t, "transfer", view.Kind)
	assert.Equal(t, stored.InvoiceID, view.InvoiceID)
	assert.Equal(t, "Sydney Airport", view.PickupLocation)
	assert.Equal(t, int64(9785), view.Breakdown.TotalPaid)

	want := stored.Intent()
	got := booking.Intent{
		Kind:            pricing.Kind(view.Kind),
		PickupLocation:  view.PickupLocation,
		DropoffLocation: view.DropoffLocation,
		VehicleType:     view.VehicleType,
		Hours:           view.Hours,
		PickupDate:      view.PickupDate,
		PickupTime:      view.PickupTime,
		Passengers:      view.Passengers,
		Luggage:         view.Luggage,
		CustomerName:    view.CustomerName,
		CustomerEmail:   view.CustomerEmail,
		CustomerPhone:   view.CustomerPhone,
		ChildSeats:      view.ChildSeats,
		FlightNumber:    view.FlightNumber,
		Notes:           view.Notes,
	}
	assert.Equal(t, want, got)
	assert.True(t, stored.CreatedAt.Equal(view.CreatedAt))

	_, err = q.GetBySession(ctx, "cs_test_missing")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
}

func TestBookingQueries_Invoice(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewBookingStore(clock.NewMockClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)))

	seed(t, store, "cs_test_pending", booking.StatusPending)
	paid := seed(t, store, "cs_test_paid", booking.StatusPaid)

	tests := []struct {
		name      string
		sessionID string
		renderErr error
		wantErr   error
		wantCalls int
	}{
		{name: "paid booking renders", sessionID: "cs_test_paid", wantCalls: 1},
		{name: "pending booking has no invoice", sessionID: "cs_test_pending", wantErr: queries.ErrInvoiceUnavailable},
		{name: "unknown session", sessionID: "cs_test_missing", wantErr: errs.ErrBookingNotFound},
		{name: "renderer failure is wrapped", sessionID: "cs_test_paid", renderErr: errs.New("font missing"), wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := &stubRenderer{err: tt.renderErr}
			doc, err := queries.NewBookingQueries(store, renderer).Invoice(ctx, tt.sessionID)
			assert.Equal(t, tt.wantCalls, renderer.calls)

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
			case tt.renderErr != nil:
				require.Error(t, err)
				assert.Contains(t, err.Error(), paid.InvoiceID)
			default:
				require.NoError(t, err)
				assert.Equal(t, paid.InvoiceID+".pdf", doc.Filename)
				assert.Equal(t, "%PDF-"+paid.InvoiceID, string(doc.Content))
			}
		})
	}
}

func TestPricingQueries_Quote(t *testing.T) {
	q := queries.NewPricingQueries(pricing.NewDefaultAuthority())

	quote, err := q.Quote(context.Background(), builder.NewTransferIntent().QuoteRequest())
	require.NoError(t, err)
	assert.Equal(t, quote.Amount.AmountMinor(), quote.Breakdown.TotalPaid)
}
