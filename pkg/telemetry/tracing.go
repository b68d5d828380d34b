package telemetry

import (
	"context"
	"encoding/json"
	"os"

	"github.com/litmuschaos/litmus-scenario-gen/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	TracerName  = "litmuschaos.io/litmus-scenario-gen"
	TraceParent = "TRACE_PARENT"
)

// StartTracing starts a span named spanName as a child of ctx
func StartTracing(ctx context.Context, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, spanName)
}

// GetTraceParentContext returns a context carrying the span context passed in
// the TRACE_PARENT env, so that generation joins the caller's trace
func GetTraceParentContext() context.Context {
	traceParent := os.Getenv(TraceParent)
	if traceParent == "" {
		return context.Background()
	}

	pro := otel.GetTextMapPropagator()
	carrier := make(map[string]string)
	if err := json.Unmarshal([]byte(traceParent), &carrier); err != nil {
		log.Warnf("unable to parse %s, err: %v", TraceParent, err)
		return context.Background()
	}

	return pro.Extract(context.Background(), propagation.MapCarrier(carrier))
}

// GetMarshalledSpanFromContext Extract spanContext from the context and return it as json encoded string
func GetMarshalledSpanFromContext(ctx context.Context) string {
	carrier := make(map[string]string)
	pro := otel.GetTextMapPropagator()

	pro.Inject(ctx, propagation.MapCarrier(carrier))

	if len(carrier) == 0 {
		log.Error("spanContext not present in the context, unable to marshall")
		return ""
	}

	marshalled, err := json.Marshal(carrier)
	if err != nil {
		log.Error(err.Error())
		return ""
	}
	if len(marshalled) >= 1024 {
		log.Error("marshalled span context is too large, unable to marshall")
		return ""
	}
	return string(marshalled)
}
