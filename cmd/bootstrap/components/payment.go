package components

import (
	"transfer-booking/internal/infra/payment"
	"transfer-booking/internal/pkg/config"
	"transfer-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			payment.NewStripeWebhookVerifier,
			fx.As(new(commands.WebhookVerifier)),
		),
	),
)

func NewStripeGateway(cfg config.StripeConfig) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg, nil)
}
