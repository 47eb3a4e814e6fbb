package bootstrap

import (
	"transfer-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	components.PersistenceModule,
	components.PaymentModule,
	components.UseCaseModule,
	components.ArtifactModule,
	components.HandlerModule,
)
