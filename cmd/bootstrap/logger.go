package bootstrap

import (
	"context"
	"log/slog"

	"transfer-booking/internal/handler/middleware"
	"transfer-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)

// NewLogger installs the process-wide slog default and closes the file sink on stop.
func NewLogger(lc fx.Lifecycle, cfg config.Config) *middleware.Logger {
	logger := middleware.NewLogger(cfg.Log)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return logger.Close()
		},
	})

	return logger
}
