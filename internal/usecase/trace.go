package usecase

import (
	"context"

	"github.com/riskibarqy/lol-stats/internal/domain/matchstats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("lol-stats/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan opens a child span only under a traced request; CLI runs
// and tests get a no-op span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// reportAttrs describes the entity kind and window a report reads.
func reportAttrs(kind matchstats.Kind, f matchstats.Filter) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("lolstats.window.start", f.Start),
		attribute.String("lolstats.window.end", f.End),
	}
	if kind != "" {
		attrs = append(attrs, attribute.String("lolstats.kind", string(kind)))
	}
	if len(f.Leagues) > 0 {
		attrs = append(attrs, attribute.StringSlice("lolstats.leagues", f.Leagues))
	}
	if len(f.Patches) > 0 {
		attrs = append(attrs, attribute.StringSlice("lolstats.patches", f.Patches))
	}
	return attrs
}
