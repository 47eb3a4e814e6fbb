package components

import (
	"transfer-booking/internal/infra/repository"
	"transfer-booking/internal/infra/worker"
	"transfer-booking/internal/usecase/commands"
	"transfer-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	repositoryModule,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Booking
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingStore)),
			fx.As(new(queries.BookingReader)),
			fx.As(new(worker.BookingReader)),
		),
		// Notification outbox
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
			fx.As(new(worker.JobQueue)),
		),
	),
)
