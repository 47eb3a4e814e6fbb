package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"transfer-booking/internal/domain/booking"
	"transfer-booking/internal/infra/artifact"
	"transfer-booking/internal/pkg/clock"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/pkg/errs"
	"transfer-booking/internal/pkg/metrics"
	"transfer-booking/internal/usecase/commands"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
)

// ErrUnprocessableJob fails a job permanently without further attempts.
var ErrUnprocessableJob = errs.New("artifact job cannot be processed")

type JobQueue interface {
	ClaimDue(ctx context.Context, limit int, now time.Time, ttl time.Duration) ([]commands.NotificationJob, error)
	MarkDone(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt time.Time, final bool, now time.Time) error
}

type BookingReader interface {
	FindBySession(ctx context.Context, sessionID string) (*booking.Booking, error)
}

type InvoiceRenderer interface {
	RenderInvoice(b *booking.Booking) ([]byte, error)
}

// Dispatcher drains the artifacts outbox: render the invoice, email the customer, notify the operator.
type Dispatcher struct {
	jobs     JobQueue
	bookings BookingReader
	renderer InvoiceRenderer
	composer *artifact.Composer
	mailer   artifact.Mailer
	clock    clock.Clock
	cfg      config.WorkerConfig
}

func NewDispatcher(
	jobs JobQueue,
	bookings BookingReader,
	renderer InvoiceRenderer,
	composer *artifact.Composer,
	mailer artifact.Mailer,
	clk clock.Clock,
	cfg config.WorkerConfig,
) *Dispatcher {
	return &Dispatcher{
		jobs:     jobs,
		bookings: bookings,
		renderer: renderer,
		composer: composer,
		mailer:   mailer,
		clock:    clk,
		cfg:      cfg,
	}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("artifact dispatcher started", slog.Duration("poll_interval", d.cfg.PollInterval))
	for {
		if _, err := d.ProcessDue(ctx); err != nil && ctx.Err() == nil {
			slog.Error("artifact dispatcher tick failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			slog.Info("artifact dispatcher stopped")
			return
		case <-ticker.C:
		}
	}
}

// ProcessDue claims one batch and handles each job. It returns how many jobs completed.
func (d *Dispatcher) ProcessDue(ctx context.Context) (int, error) {
	jobs, err := d.jobs.ClaimDue(ctx, d.cfg.BatchSize, d.clock.Now(), d.cfg.ProcessingTTL)
	if err != nil {
		return 0, errs.Wrap(err, "claim artifact jobs")
	}

	done := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			return done, ctx.Err()
		}
		if d.handle(ctx, job) {
			done++
		}
	}
	return done, nil
}

func (d *Dispatcher) handle(ctx context.Context, job commands.NotificationJob) bool {
	start := time.Now()
	defer func() {
		metrics.ArtifactJobDuration.Observe(time.Since(start).Seconds())
	}()

	log := slog.With(slog.String("job_id", job.ID.String()), slog.Int("attempt", job.Attempts))

	err := d.process(ctx, job)
	now := d.clock.Now()
	if err == nil {
		if markErr := d.jobs.MarkDone(ctx, job.ID, now); markErr != nil {
			log.Error("failed to mark artifact job done", slog.String("error", markErr.Error()))
		}
		metrics.ArtifactJobs.WithLabelValues("done").Inc()
		log.Info("artifact job done")
		return true
	}

	final := job.Attempts >= d.cfg.MaxAttempts || errs.Is(err, ErrUnprocessableJob)
	retryAt := now.Add(time.Duration(job.Attempts) * d.cfg.RequeueDelay)
	if markErr := d.jobs.MarkFailed(ctx, job.ID, err.Error(), retryAt, final, now); markErr != nil {
		log.Error("failed to record artifact job failure", slog.String("error", markErr.Error()))
	}

	if final {
		metrics.ArtifactJobs.WithLabelValues("failed").Inc()
		log.Error("artifact job failed permanently", slog.String("error", err.Error()))
	} else {
		metrics.ArtifactJobs.WithLabelValues("retry").Inc()
		log.Warn("artifact job will be retried", slog.Time("retry_at", retryAt), slog.String("error", err.Error()))
	}
	return false
}

func (d *Dispatcher) process(ctx context.Context, job commands.NotificationJob) error {
	if job.Kind != commands.JobKindArtifacts {
		return errs.Mark(errs.Newf("unsupported job kind %q", job.Kind), ErrUnprocessableJob)
	}

	var payload commands.ArtifactJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return errs.Mark(errs.Wrap(err, "decode artifact payload"), ErrUnprocessableJob)
	}

	b, err := d.bookings.FindBySession(ctx, payload.SessionID)
	if err != nil {
		return errs.Wrapf(err, "load booking %s", payload.SessionID)
	}
	if b == nil || b.Status != booking.StatusPaid {
		return errs.Wrapf(ErrUnprocessableJob, "session %s", payload.SessionID)
	}

	pdf, err := d.renderer.RenderInvoice(b)
	if err != nil {
		return errs.Wrapf(err, "render invoice %s", b.InvoiceID)
	}

	if err := d.send(ctx, d.composer.CustomerConfirmation(b, pdf)); err != nil {
		return errs.Wrap(err, "send customer confirmation")
	}
	if err := d.send(ctx, d.composer.AdminNotification(b)); err != nil {
		return errs.Wrap(err, "send admin notification")
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, msg artifact.Message) error {
	return retry.Do(
		func() error {
			return d.mailer.Send(ctx, msg)
		},
		retry.Context(ctx),
		retry.Attempts(max(1, d.cfg.SendAttempts)),
		retry.Delay(d.cfg.SendDelay),
		retry.MaxDelay(d.cfg.SendMaxDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("mail send retry", slog.Uint64("attempt", uint64(n+1)), slog.String("to", strings.Join(msg.To, ",")), slog.String("error", err.Error()))
		}),
	)
}
