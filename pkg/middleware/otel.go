package middleware

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/router"
)

// Default tracer name.
const defaultTracerName = "headless"

// OTelConfig configures the OpenTelemetry tracing.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "headless").
	TracerName string

	// Provider supplies the tracer. Default: the global provider.
	Provider trace.TracerProvider

	// IncludeParams records navigation params as span attributes.
	// Params may carry identifiers, so this is disabled by default.
	IncludeParams bool

	// Filter determines which navigations to trace.
	// If nil, all navigations are traced.
	Filter func(nav router.Navigation) bool

	// AttributeExtractor adds custom attributes to navigation spans.
	AttributeExtractor func(nav router.Navigation) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry tracing.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(provider trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.Provider = provider
	}
}

// WithIncludeParams enables recording navigation params.
func WithIncludeParams(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeParams = include
	}
}

// WithNavigationFilter sets a filter function for navigations.
func WithNavigationFilter(filter func(nav router.Navigation) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(nav router.Navigation) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// Tracing creates spans for navigations and form submissions.
type Tracing struct {
	config OTelConfig
	tracer trace.Tracer
}

// NewTracing resolves the tracer. Configure the global provider before
// calling it, or pass WithTracerProvider:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
func NewTracing(opts ...OTelOption) *Tracing {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	provider := config.Provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Tracing{config: config, tracer: provider.Tracer(config.TracerName)}
}

// Navigation returns middleware that runs the navigate callback inside a
// span. The callback receives the span's context.
func (t *Tracing) Navigation() router.Middleware {
	return func(next router.NavigateFunc) router.NavigateFunc {
		return func(ctx context.Context, nav router.Navigation) {
			if t.config.Filter != nil && !t.config.Filter(nav) {
				next(ctx, nav)
				return
			}

			attrs := []attribute.KeyValue{
				attribute.String("headless.from", nav.From),
				attribute.String("headless.to", nav.To),
				attribute.String("headless.path", nav.Path),
				attribute.String("headless.template", "/"+strings.Join(nav.Segments, "/")),
			}
			if t.config.IncludeParams {
				for name, value := range nav.Params {
					attrs = append(attrs, attribute.String("headless.param."+name, value))
				}
			}
			if t.config.AttributeExtractor != nil {
				attrs = append(attrs, t.config.AttributeExtractor(nav)...)
			}

			spanCtx, span := t.tracer.Start(ctx,
				fmt.Sprintf("headless.navigate %s", nav.To),
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			next(spanCtx, nav)
			span.SetStatus(codes.Ok, "")
		}
	}
}

// Submit wraps a form submit callback in a span named after the form.
func (t *Tracing) Submit(name string, fn form.SubmitFunc) form.SubmitFunc {
	return func(ctx context.Context, values form.Values) error {
		spanCtx, span := t.tracer.Start(ctx,
			fmt.Sprintf("headless.submit %s", name),
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(
				attribute.String("headless.form", name),
				attribute.Int("headless.field_count", len(values)),
			),
		)
		defer span.End()

		err := fn(spanCtx, values)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return err
	}
}
