package booking

import (
	"fmt"
	"strings"
	"time"

	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrEmptySessionID = errs.New("session id is required")

// Booking is keyed by the provider session id. Trip fields mirror Intent so copier can move them.
type Booking struct {
	SessionID        string
	InvoiceID        string
	Status           Status
	TotalAmountMinor int64
	Currency         string
	EmailSent        bool

	Kind            pricing.Kind
	PickupLocation  string
	DropoffLocation string
	VehicleType     string
	Hours           int
	PickupDate      string
	PickupTime      string
	Passengers      int
	Luggage         int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ChildSeats      int
	FlightNumber    string
	Notes           string

	CreatedAt time.Time
	UpdatedAt time.Time
	PaidAt    *time.Time
}

// GateResult reports whether this particular call flipped emailSent.
type GateResult struct {
	Booking       *Booking
	EmailGateOpen bool
}

func NewBooking(sessionID string, intent Intent, amount pricing.Money, status Status, now time.Time) (*Booking, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrEmptySessionID
	}
	if !status.IsValid() {
		return nil, errs.Wrapf(ErrInvalidStatus, "status %q", status)
	}

	b := &Booking{
		SessionID:        sessionID,
		InvoiceID:        NewInvoiceID(now, uuid.New()),
		Status:           status,
		TotalAmountMinor: amount.AmountMinor(),
		Currency:         amount.Currency(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := copier.Copy(b, &intent); err != nil {
		return nil, errs.Wrap(err, "copy intent into booking")
	}
	if status == StatusPaid {
		paidAt := now
		b.PaidAt = &paidAt
	}
	return b, nil
}

// Intent reconstructs the trip fields.
func (b *Booking) Intent() Intent {
	return Intent{
		Kind:            b.Kind,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		VehicleType:     b.VehicleType,
		Hours:           b.Hours,
		PickupDate:      b.PickupDate,
		PickupTime:      b.PickupTime,
		Passengers:      b.Passengers,
		Luggage:         b.Luggage,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		ChildSeats:      b.ChildSeats,
		FlightNumber:    b.FlightNumber,
		Notes:           b.Notes,
	}
}

func (b *Booking) Amount() pricing.Money {
	return pricing.NewMoney(b.TotalAmountMinor, b.Currency)
}

func (b *Booking) Breakdown() pricing.PriceBreakdown {
	return pricing.Breakdown(b.TotalAmountMinor)
}

// ApplyUpsert merges a repeated write. Descriptive fields are never overwritten;
// status only advances; the amount is replaced only on PENDING -> PAID.
func (b *Booking) ApplyUpsert(amount pricing.Money, status Status, now time.Time) bool {
	if !b.Status.CanAdvanceTo(status) {
		return false
	}

	if status == StatusPaid {
		b.TotalAmountMinor = amount.AmountMinor()
		b.Currency = amount.Currency()
		paidAt := now
		b.PaidAt = &paidAt
	}
	b.Status = status
	b.UpdatedAt = now
	return true
}

// Gate flips emailSent exactly once, marking the booking PAID in the same step.
// A cancelled booking never opens the gate.
func (b *Booking) Gate(now time.Time) bool {
	if b.EmailSent || b.Status == StatusCancelled {
		return false
	}
	if b.Status != StatusPaid {
		paidAt := now
		b.PaidAt = &paidAt
	}
	b.Status = StatusPaid
	b.EmailSent = true
	b.UpdatedAt = now
	return true
}

// NewInvoiceID formats INV-YYYYMMDD-XXXXXXXX from the creation date and a random id.
func NewInvoiceID(now time.Time, id uuid.UUID) string {
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return fmt.Sprintf("INV-%s-%s", now.UTC().Format("20060102"), hex[:8])
}

func (b *Booking) Clone() *Booking {
	c := *b
	if b.PaidAt != nil {
		t := *b.PaidAt
		c.PaidAt = &t
	}
	return &c
}
