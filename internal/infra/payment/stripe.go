package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type StripeGateway struct {
	api *client.API
}

// NewStripeGateway uses the default Stripe backends when backends is nil.
func NewStripeGateway(cfg config.StripeConfig, backends *stripe.Backends) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, backends)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.Amount.Currency()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(p.ProductName),
						Description: stripe.String(p.Description),
					},
					UnitAmount: stripe.Int64(p.Amount.AmountMinor()),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		Metadata:   p.Metadata,
	}
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, classifyStripeErr(err, "create checkout session")
	}
	return toCheckoutSession(s), nil
}

func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*commands.CheckoutSession, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, errs.Mark(errs.New("empty session id"), commands.ErrSessionNotFound)
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, classifyStripeErr(err, "retrieve checkout session "+sessionID)
	}
	return toCheckoutSession(s), nil
}

func classifyStripeErr(err error, msg string) error {
	var serr *stripe.Error
	if errors.As(err, &serr) {
		if serr.HTTPStatusCode == http.StatusNotFound || serr.Code == stripe.ErrorCodeResourceMissing {
			return errs.Mark(errs.Wrap(err, msg), commands.ErrSessionNotFound)
		}
	}
	return errs.Mark(errs.Wrap(err, msg), commands.ErrProviderUnavailable)
}

func toCheckoutSession(s *stripe.CheckoutSession) *commands.CheckoutSession {
	return &commands.CheckoutSession{
		ID:          s.ID,
		URL:         s.URL,
		Paid:        s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Expired:     s.Status == stripe.CheckoutSessionStatusExpired,
		AmountTotal: s.AmountTotal,
		Currency:    string(s.Currency),
		Metadata:    s.Metadata,
	}
}

type StripeWebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewStripeWebhookVerifier(cfg config.StripeConfig) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{
		secret:    cfg.WebhookSecret,
		tolerance: cfg.WebhookTolerance,
	}
}

// ParseEvent checks the Stripe-Signature header against the raw body first; nothing is decoded
// from an unverified payload.
func (v *StripeWebhookVerifier) ParseEvent(payload []byte, signatureHeader string) (*commands.WebhookEvent, error) {
	if err := webhook.ValidatePayloadWithTolerance(payload, signatureHeader, v.secret, v.tolerance); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "verify webhook signature"), commands.ErrInvalidSignature)
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode webhook event"), commands.ErrInvalidPayload)
	}

	out := &commands.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "checkout.session.") {
		return out, nil
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, errs.Mark(errs.Newf("event %s has no data", event.ID), commands.ErrInvalidPayload)
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode checkout session"), commands.ErrInvalidPayload)
	}
	out.Session = toCheckoutSession(&s)
	return out, nil
}
