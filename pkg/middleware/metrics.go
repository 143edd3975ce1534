package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/router"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "headless").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for submit duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "headless",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records tab navigations and form submissions. Create one per
// registry; registering the same names twice on a registry panics.
type Metrics struct {
	navigations    *prometheus.CounterVec
	submitsTotal   *prometheus.CounterVec
	submitDuration *prometheus.HistogramVec
	submitErrors   *prometheus.CounterVec
	inFlight       prometheus.Gauge
}

// NewMetrics registers the metrics:
//
//   - headless_navigations_total: navigations by source and target tab
//   - headless_submits_total: form submissions by form and status
//   - headless_submit_duration_seconds: submit callback duration by form
//   - headless_submit_errors_total: failed submissions by form and error type
//   - headless_submits_in_flight: submissions currently running
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "navigations_total",
			Help:        "Total number of tab navigations",
			ConstLabels: config.ConstLabels,
		}, []string{"from", "to"}),

		submitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submits_total",
			Help:        "Total number of form submissions",
			ConstLabels: config.ConstLabels,
		}, []string{"form", "status"}),

		submitDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submit_duration_seconds",
			Help:        "Form submit callback duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"form"}),

		submitErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submit_errors_total",
			Help:        "Total number of failed form submissions",
			ConstLabels: config.ConstLabels,
		}, []string{"form", "error_type"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submits_in_flight",
			Help:        "Number of form submissions currently running",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Navigation returns middleware counting every navigation that reaches the
// host's navigate callback.
//
//	navigate := router.Chain(hist.Navigate, metrics.Navigation())
func (m *Metrics) Navigation() router.Middleware {
	return func(next router.NavigateFunc) router.NavigateFunc {
		return func(ctx context.Context, nav router.Navigation) {
			next(ctx, nav)
			m.navigations.WithLabelValues(nav.From, nav.To).Inc()
		}
	}
}

// Submit wraps a form submit callback, recording its duration and outcome
// under the given form name.
func (m *Metrics) Submit(name string, fn form.SubmitFunc) form.SubmitFunc {
	return func(ctx context.Context, values form.Values) error {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		err := fn(ctx, values)
		m.submitDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		status := "success"
		if err != nil {
			status = "error"
			m.submitErrors.WithLabelValues(name, categorizeError(err)).Inc()
		}
		m.submitsTotal.WithLabelValues(name, status).Inc()
		return err
	}
}

// categorizeError keeps error labels low-cardinality: coded errors report
// their code, everything else a coarse class.
func categorizeError(err error) string {
	if code := herrors.Code(err); code != "" {
		return code
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "internal"
	}
}
