package commands

//go:generate mockgen -source=reconcile.go -destination=../../mock/commands/mock_reconcile.go -package=commandsmock

import (
	"context"
	"log/slog"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/domain/pricing"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/pkg/metrics"
)

const (
	SourceWebhook      = "webhook"
	SourceSessionQuery = "session_query"
)

type ConfirmResult struct {
	Paid          bool
	Booking       *booking.Booking
	EmailGateOpen bool
}

type WebhookOutcome struct {
	EventType     string
	Handled       bool
	SessionID     string
	EmailGateOpen bool
}

// ReconcileCommands is shared by the webhook receiver and the session query. Both converge on
// the same store row and the same emailSent gate, so either may run first or both at once.
type ReconcileCommands interface {
	ConfirmSession(ctx context.Context, sessionID string) (*ConfirmResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookOutcome, error)
}

type reconcileUseCaseImpl struct {
	store    BookingStore
	gateway  PaymentGateway
	verifier WebhookVerifier
	trigger  ArtifactTrigger
}

func NewReconcileUseCase(store BookingStore, gateway PaymentGateway, verifier WebhookVerifier, trigger ArtifactTrigger) ReconcileCommands {
	return &reconcileUseCaseImpl{
		store:    store,
		gateway:  gateway,
		verifier: verifier,
		trigger:  trigger,
	}
}

func (uc *reconcileUseCaseImpl) ConfirmSession(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	session, err := uc.gateway.GetSession(ctx, sessionID)
	if err != nil {
		switch {
		case errs.Is(err, ErrSessionNotFound):
			metrics.SessionQueries.WithLabelValues("not_found").Inc()
		default:
			metrics.SessionQueries.WithLabelValues("provider_error").Inc()
		}
		return nil, err
	}

	result, err := uc.reconcile(ctx, session, SourceSessionQuery)
	if err != nil {
		if errs.Is(err, booking.ErrMissingIntentMetadata) {
			metrics.SessionQueries.WithLabelValues("bad_metadata").Inc()
		} else {
			metrics.SessionQueries.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	if result.Paid {
		metrics.SessionQueries.WithLabelValues("paid").Inc()
	} else {
		metrics.SessionQueries.WithLabelValues("pending").Inc()
	}
	return result, nil
}

// HandleWebhook verifies before touching anything. Unknown event types are acknowledged and ignored.
func (uc *reconcileUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookOutcome, error) {
	event, err := uc.verifier.ParseEvent(payload, signatureHeader)
	if err != nil {
		metrics.WebhookEvents.WithLabelValues("unknown", "rejected").Inc()
		return nil, err
	}

	outcome := &WebhookOutcome{EventType: event.Type}
	switch event.Type {
	case EventCheckoutCompleted, EventCheckoutAsyncPaymentSucceeded, EventCheckoutExpired:
	default:
		metrics.WebhookEvents.WithLabelValues(event.Type, "ignored").Inc()
		slog.DebugContext(ctx, "ignoring webhook event", slog.String("event_type", event.Type), slog.String("event_id", event.ID))
		return outcome, nil
	}

	if event.Session == nil {
		metrics.WebhookEvents.WithLabelValues(event.Type, "rejected").Inc()
		return nil, errs.Mark(errs.Newf("event %s carries no checkout session", event.ID), ErrInvalidPayload)
	}
	outcome.SessionID = event.Session.ID

	result, err := uc.reconcile(ctx, event.Session, SourceWebhook)
	if err != nil {
		if errs.Is(err, booking.ErrMissingIntentMetadata) {
			metrics.WebhookEvents.WithLabelValues(event.Type, "rejected").Inc()
			return nil, errs.Mark(err, ErrInvalidPayload)
		}
		metrics.WebhookEvents.WithLabelValues(event.Type, "error").Inc()
		return nil, err
	}

	outcome.Handled = true
	outcome.EmailGateOpen = result.EmailGateOpen
	metrics.WebhookEvents.WithLabelValues(event.Type, "handled").Inc()
	return outcome, nil
}

// reconcile writes the provider's view of a session into the store. The charged amount always
// comes from the provider; metadata only rebuilds the descriptive trip fields.
func (uc *reconcileUseCaseImpl) reconcile(ctx context.Context, session *CheckoutSession, source string) (*ConfirmResult, error) {
	intent, err := booking.IntentFromMetadata(session.Metadata)
	if err != nil {
		slog.ErrorContext(ctx, "session carries unusable intent metadata",
			slog.String("session_id", session.ID),
			slog.String("source", source),
			slog.String("error", err.Error()))
		return nil, err
	}

	status := statusOf(session)
	amount := pricing.NewMoney(session.AmountTotal, session.Currency)

	b, err := uc.store.UpsertFromIntent(ctx, session.ID, intent, amount, status)
	if err != nil {
		return nil, errs.Wrapf(err, "upsert booking %s", session.ID)
	}

	if b.Status != booking.StatusPaid {
		if status == booking.StatusPaid {
			slog.WarnContext(ctx, "payment reported for a cancelled booking",
				slog.String("session_id", session.ID),
				slog.String("source", source))
		}
		return &ConfirmResult{Paid: false, Booking: b}, nil
	}

	gate, err := uc.store.MarkPaidAndGate(ctx, session.ID)
	if err != nil {
		return nil, errs.Wrapf(err, "gate booking %s", session.ID)
	}

	if gate.EmailGateOpen {
		metrics.EmailGateOpened.WithLabelValues(source).Inc()
		slog.InfoContext(ctx, "booking confirmed",
			slog.String("session_id", session.ID),
			slog.String("invoice_id", gate.Booking.InvoiceID),
			slog.String("source", source))

		if err := uc.trigger.Trigger(ctx, gate.Booking); err != nil {
			metrics.ArtifactJobs.WithLabelValues("enqueue_error").Inc()
			slog.ErrorContext(ctx, "failed to trigger booking artifacts",
				slog.String("session_id", session.ID),
				slog.String("error", err.Error()))
		}
	}

	return &ConfirmResult{
		Paid:          true,
		Booking:       gate.Booking,
		EmailGateOpen: gate.EmailGateOpen,
	}, nil
}

func statusOf(session *CheckoutSession) booking.Status {
	switch {
	case session.Paid:
		return booking.StatusPaid
	case session.Expired:
		return booking.StatusCancelled
	default:
		return booking.StatusPending
	}
}
