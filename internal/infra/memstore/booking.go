package memstore

import (
	"context"
	"sync"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/infra"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/errs"
)

// BookingStore keeps bookings in a map guarded by one mutex. Every read returns a clone.
type BookingStore struct {
	mu       sync.Mutex
	bookings map[string]*booking.Booking
	clock    clock.Clock
}

func NewBookingStore(clk clock.Clock) *BookingStore {
	return &BookingStore{
		bookings: make(map[string]*booking.Booking),
		clock:    clk,
	}
}

func (s *BookingStore) UpsertFromIntent(
	_ context.Context,
	sessionID string,
	intent booking.Intent,
	amount pricing.Money,
	status booking.Status,
) (*booking.Booking, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.bookings[sessionID]; ok {
		existing.ApplyUpsert(amount, status, now)
		return existing.Clone(), nil
	}

	b, err := booking.NewBooking(sessionID, intent, amount, status, now)
	if err != nil {
		return nil, err
	}
	s.bookings[sessionID] = b
	return b.Clone(), nil
}

func (s *BookingStore) MarkPaidAndGate(_ context.Context, sessionID string) (*booking.GateResult, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[sessionID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errs.ErrBookingNotFound, infra.KindNotFound)
	}
	opened := b.Gate(now)
	return &booking.GateResult{Booking: b.Clone(), EmailGateOpen: opened}, nil
}

func (s *BookingStore) FindBySession(_ context.Context, sessionID string) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[sessionID]
	if !ok {
		return nil, nil
	}
	return b.Clone(), nil
}

// Len reports how many bookings are stored.
func (s *BookingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}
