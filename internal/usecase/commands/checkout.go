package commands

//go:generate mockgen -source=checkout.go -destination=../../mock/commands/mock_checkout.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/pkg/metrics"
)

var (
	ErrPricing         = errs.New("pricing failed")
	ErrSessionCreation = errs.New("checkout session creation failed")
)

type CheckoutResult struct {
	SessionID   string
	RedirectURL string
	Quote       pricing.Quote
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, intent booking.Intent) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	store     BookingStore
	authority PriceAuthority
	gateway   PaymentGateway
	cfg       config.CheckoutConfig
}

func NewCheckoutUseCase(store BookingStore, authority PriceAuthority, gateway PaymentGateway, cfg config.CheckoutConfig) CheckoutCommands {
	return &checkoutUseCaseImpl{
		store:     store,
		authority: authority,
		gateway:   gateway,
		cfg:       cfg,
	}
}

// CreateCheckout prices the intent server-side and opens a provider session carrying the intent as metadata.
// Every call creates a new session; retries are not deduplicated.
func (uc *checkoutUseCaseImpl) CreateCheckout(ctx context.Context, intent booking.Intent) (*CheckoutResult, error) {
	intent = intent.Normalize()
	if err := intent.Validate(); err != nil {
		metrics.CheckoutSessions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	quote, err := uc.authority.Quote(intent.QuoteRequest())
	if err != nil {
		metrics.CheckoutSessions.WithLabelValues("pricing_error").Inc()
		return nil, errs.Mark(errs.Wrap(err, "quote booking intent"), ErrPricing)
	}
	amount := pricing.NewMoney(quote.Amount.AmountMinor(), uc.cfg.Currency)

	base := strings.TrimRight(uc.cfg.BaseURL, "/")
	session, err := uc.gateway.CreateCheckoutSession(ctx, CheckoutSessionParams{
		Amount:        amount,
		ProductName:   uc.cfg.ProductName,
		Description:   intent.Summary(),
		CustomerEmail: intent.CustomerEmail,
		SuccessURL:    base + "/booking/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     base + "/booking?cancelled=1",
		Metadata:      intent.ToMetadata(),
	})
	if err != nil {
		metrics.CheckoutSessions.WithLabelValues("provider_error").Inc()
		return nil, errs.Mark(errs.Wrap(err, "create checkout session"), ErrSessionCreation)
	}

	// The webhook and session query recreate the row from metadata, so a failed insert here is recoverable.
	if _, err := uc.store.UpsertFromIntent(ctx, session.ID, intent, amount, booking.StatusPending); err != nil {
		slog.WarnContext(ctx, "failed to record pending booking",
			slog.String("session_id", session.ID),
			slog.String("error", err.Error()))
	}

	metrics.CheckoutSessions.WithLabelValues("created").Inc()
	slog.InfoContext(ctx, "checkout session created",
		slog.String("session_id", session.ID),
		slog.Int64("amount_minor", amount.AmountMinor()),
		slog.String("kind", string(intent.Kind)))

	return &CheckoutResult{
		SessionID:   session.ID,
		RedirectURL: session.URL,
		Quote:       quote,
	}, nil
}
