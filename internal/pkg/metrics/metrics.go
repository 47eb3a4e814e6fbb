package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_webhook_events_total",
			Help: "Webhook deliveries by event type and outcome",
		},
		[]string{"event_type", "outcome"},
	)

	SessionQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_session_queries_total",
			Help: "Session confirmation queries by outcome",
		},
		[]string{"outcome"},
	)

	EmailGateOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_email_gate_opened_total",
			Help: "Times the emailSent gate was won, by confirming source",
		},
		[]string{"source"},
	)

	CheckoutSessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_checkout_sessions_total",
			Help: "Checkout session creation attempts by outcome",
		},
		[]string{"outcome"},
	)

	ArtifactJobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_artifact_jobs_total",
			Help: "Artifact outbox jobs processed by outcome",
		},
		[]string{"outcome"},
	)

	ArtifactJobDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "booking_artifact_job_duration_seconds",
			Help: "Time taken to render and deliver one artifact job",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		WebhookEvents,
		SessionQueries,
		EmailGateOpened,
		CheckoutSessions,
		ArtifactJobs,
		ArtifactJobDuration,
		HTTPRequestDuration,
	)
}
