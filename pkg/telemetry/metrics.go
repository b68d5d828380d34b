package telemetry

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprometheus "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
)

const (
	MeterName = "litmuschaos.io/litmus-scenario-gen"

	ScenariosGeneratedMetric     = "scenariogen_scenarios_generated"
	NodeMetricsUnavailableMetric = "scenariogen_node_metrics_unavailable"
)

// InitMetrics installs a global meter provider backed by a prometheus exporter
// registered on reg
func InitMetrics(ctx context.Context, reg prometheus.Registerer) (shutdown func(context.Context) error, err error) {
	exporter, err := otelprometheus.New(otelprometheus.WithRegisterer(reg))
	if err != nil {
		return nil, err
	}
	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)
	return provider.Shutdown, nil
}

// MetricsHandler serves the metrics gathered by g
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// RecordScenarioGenerated counts a scenario produced by the factory
func RecordScenarioGenerated(ctx context.Context, scenario string) {
	increment(ctx, ScenariosGeneratedMetric, "number of generated scenarios per archetype",
		attribute.String("scenario", scenario))
}

// RecordNodeMetricsUnavailable counts a node whose free resources could not be computed
func RecordNodeMetricsUnavailable(ctx context.Context, node string) {
	increment(ctx, NodeMetricsUnavailableMetric, "number of nodes discovered without usable metrics",
		attribute.String("node", node))
}

func increment(ctx context.Context, name, description string, attrs ...attribute.KeyValue) {
	counter, err := otel.Meter(MeterName).Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		log.Debugf("unable to create counter %s, err: %v", name, err)
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}
