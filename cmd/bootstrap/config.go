package bootstrap

import (
	"transfer-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections hands each constructor only the section it reads.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
	func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
	func(cfg config.Config) config.WorkerConfig { return cfg.Worker },
	func(cfg config.Config) config.MailConfig { return cfg.Mail },
)
