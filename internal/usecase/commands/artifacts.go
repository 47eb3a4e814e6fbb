package commands

import (
	"context"
	"encoding/json"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/errs"
)

// ArtifactJobPayload is the body of an artifacts outbox job.
type ArtifactJobPayload struct {
	SessionID string `json:"sessionId"`
	InvoiceID string `json:"invoiceId"`
}

func ArtifactDedupeKey(sessionID string) string {
	return JobKindArtifacts + ":" + sessionID
}

// OutboxArtifactTrigger records delivery intent durably; the worker renders and sends later.
type OutboxArtifactTrigger struct {
	jobs  NotificationRepository
	clock clock.Clock
}

func NewOutboxArtifactTrigger(jobs NotificationRepository, clk clock.Clock) *OutboxArtifactTrigger {
	return &OutboxArtifactTrigger{jobs: jobs, clock: clk}
}

func (t *OutboxArtifactTrigger) Trigger(ctx context.Context, b *booking.Booking) error {
	payload, err := json.Marshal(ArtifactJobPayload{SessionID: b.SessionID, InvoiceID: b.InvoiceID})
	if err != nil {
		return errs.Wrap(err, "marshal artifact job payload")
	}

	_, err = t.jobs.CreateJob(ctx, NotificationJob{
		Kind:      JobKindArtifacts,
		Topic:     TopicBookingPaid,
		DedupeKey: ArtifactDedupeKey(b.SessionID),
		Payload:   payload,
		Status:    JobStatusQueued,
		RunAt:     t.clock.Now(),
	})
	if err != nil {
		return errs.Wrapf(err, "enqueue artifacts for %s", b.SessionID)
	}
	return nil
}
