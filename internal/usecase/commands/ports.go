package commands

//go:generate mockgen -source=ports.go -destination=../../mock/commands/mock_ports.go -package=commandsmock

import (
	"context"
	"time"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errs.New("checkout session not found")
	ErrProviderUnavailable = errs.New("payment provider unavailable")
	ErrInvalidSignature    = errs.New("invalid webhook signature")
	ErrInvalidPayload      = errs.New("invalid webhook payload")
)

// BookingStore is the only write path for booking content.
type BookingStore interface {
	// UpsertFromIntent is idempotent: status only advances, descriptive fields and
	// invoice id are never overwritten, amount is replaced only on PENDING -> PAID.
	UpsertFromIntent(ctx context.Context, sessionID string, intent booking.Intent, amount pricing.Money, status booking.Status) (*booking.Booking, error)
	// MarkPaidAndGate atomically flips emailSent; at most one concurrent caller observes EmailGateOpen.
	MarkPaidAndGate(ctx context.Context, sessionID string) (*booking.GateResult, error)
	// FindBySession returns nil, nil when absent.
	FindBySession(ctx context.Context, sessionID string) (*booking.Booking, error)
}

type PriceAuthority interface {
	Quote(req pricing.QuoteRequest) (pricing.Quote, error)
}

type CheckoutSessionParams struct {
	Amount        pricing.Money
	ProductName   string
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// CheckoutSession is the provider's view of a session; the provider is the source of truth for payment.
type CheckoutSession struct {
	ID          string
	URL         string
	Paid        bool
	Expired     bool
	AmountTotal int64
	Currency    string
	Metadata    map[string]string
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	// GetSession returns an error marked ErrSessionNotFound for unknown ids.
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

const (
	EventCheckoutCompleted             = "checkout.session.completed"
	EventCheckoutAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	EventCheckoutExpired               = "checkout.session.expired"
)

type WebhookEvent struct {
	ID   string
	Type string
	// Session is nil for event types that do not carry a checkout session.
	Session *CheckoutSession
}

type WebhookVerifier interface {
	// ParseEvent verifies the signature over the raw body before decoding anything.
	ParseEvent(payload []byte, signatureHeader string) (*WebhookEvent, error)
}

// ArtifactTrigger starts invoice and email delivery for a booking whose gate just opened.
type ArtifactTrigger interface {
	Trigger(ctx context.Context, b *booking.Booking) error
}

const (
	JobKindArtifacts = "artifacts"
	TopicBookingPaid = "booking_paid"
	JobStatusQueued  = "queued"
	JobStatusRunning = "processing"
	JobStatusDone    = "done"
	JobStatusFailed  = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	DedupeKey string
	Payload   []byte
	Status    string
	Attempts  int
	LastError *string
	RunAt     time.Time
}

type NotificationRepository interface {
	// CreateJob is a no-op returning false when a job with the same dedupe key exists.
	CreateJob(ctx context.Context, job NotificationJob) (bool, error)
}
