package bootstrap

import (
	"transfer-booking/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			NewRegistry,
			fx.As(new(prometheus.Gatherer)),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.Register(reg)
	return reg
}
