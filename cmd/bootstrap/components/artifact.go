package components

import (
	"context"
	"log/slog"

	"transfer-booking/internal/infra/artifact"
	"transfer-booking/internal/infra/worker"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var ArtifactModule = fx.Module("artifact",
	fx.Provide(
		fx.Annotate(
			NewInvoiceRenderer,
			fx.As(new(queries.InvoiceRenderer)),
			fx.As(new(worker.InvoiceRenderer)),
		),
		NewComposer,
		artifact.NewMailer,
		worker.NewDispatcher,
	),
	fx.Invoke(StartDispatcher),
)

func NewInvoiceRenderer(cfg config.MailConfig) *artifact.PDFInvoiceRenderer {
	return artifact.NewPDFInvoiceRenderer(cfg.BusinessName)
}

func NewComposer(cfg config.MailConfig) *artifact.Composer {
	return artifact.NewComposer(cfg.From, cfg.AdminAddress, cfg.BusinessName)
}

// StartDispatcher runs the outbox worker in-process when WORKER_ENABLED is set.
func StartDispatcher(lc fx.Lifecycle, d *worker.Dispatcher, cfg config.WorkerConfig) {
	if !cfg.Enabled {
		slog.Info("artifact dispatcher disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				d.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
