package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"transfer-booking/internal/handler/api"
	"transfer-booking/internal/handler/middleware"
	"transfer-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Checkout *api.CheckoutHandler
	Session  *api.SessionHandler
	Webhook  *api.WebhookHandler
	Booking  *api.BookingHandler
}

func NewHandlers(checkout *api.CheckoutHandler, session *api.SessionHandler, webhook *api.WebhookHandler, booking *api.BookingHandler) Handlers {
	return Handlers{Checkout: checkout, Session: session, Webhook: webhook, Booking: booking}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, gatherer prometheus.Gatherer, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, gatherer, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quote", Handler: h.Checkout.Quote},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.CreateCheckout},
			{Method: http.MethodPost, Path: "/checkout/session", Handler: h.Session.ConfirmSession},
			{Method: http.MethodPost, Path: "/webhooks/stripe", Handler: h.Webhook.Handle},
		})

		bookings := apiGroup.Group("/bookings")
		{
			noStore := []gin.HandlerFunc{middleware.NoStore()}
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:sessionId", Handler: h.Booking.Get, Mw: noStore},
				{Method: http.MethodGet, Path: "/:sessionId/invoice", Handler: h.Booking.Invoice, Mw: noStore},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
