package components

import (
	"transfer-booking/internal/handler"
	"transfer-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewSessionHandler,
		api.NewWebhookHandler,
		api.NewBookingHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
