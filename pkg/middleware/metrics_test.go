package middleware

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/pkg/form"
	"github.com/vango-dev/headless/pkg/router"
)

func TestMetricsNavigation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))

	hist := router.NewHistory("/a")
	navigate := router.Chain(hist.Navigate, m.Navigation())
	navigate(context.Background(), router.Navigation{Path: "/b", From: "a", To: "b"})
	navigate(context.Background(), router.Navigation{Path: "/a", From: "b", To: "a"})
	navigate(context.Background(), router.Navigation{Path: "/b", From: "a", To: "b"})

	if got := testutil.ToFloat64(m.navigations.WithLabelValues("a", "b")); got != 2 {
		t.Errorf("navigations_total{a,b} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.navigations.WithLabelValues("b", "a")); got != 1 {
		t.Errorf("navigations_total{b,a} = %v, want 1", got)
	}
	if got := len(hist.Entries()); got != 4 {
		t.Errorf("history entries = %d, want 4", got)
	}
}

func TestMetricsSubmit(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	fail := errors.New("boom")
	var next error
	submit := m.Submit("profile", func(context.Context, form.Values) error { return next })

	if err := submit(context.Background(), form.Values{"name": "Ann"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	next = fail
	if err := submit(context.Background(), nil); !errors.Is(err, fail) {
		t.Fatalf("submit error = %v, want %v", err, fail)
	}

	if got := testutil.ToFloat64(m.submitsTotal.WithLabelValues("profile", "success")); got != 1 {
		t.Errorf("submits_total{success} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.submitsTotal.WithLabelValues("profile", "error")); got != 1 {
		t.Errorf("submits_total{error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.submitErrors.WithLabelValues("profile", "internal")); got != 1 {
		t.Errorf("submit_errors_total{internal} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Errorf("submits_in_flight = %v, want 0", got)
	}
	if got := testutil.CollectAndCount(m.submitDuration); got != 1 {
		t.Errorf("submit_duration_seconds series = %d, want 1", got)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{herrors.New("H042"), "H042"},
		{fmt.Errorf("wrapped: %w", herrors.New("H001")), "H001"},
		{context.DeadlineExceeded, "timeout"},
		{fmt.Errorf("save: %w", context.Canceled), "canceled"},
		{errors.New("disk full"), "internal"},
	}
	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Errorf("categorizeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestNewMetricsTwiceOnRegistryPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(WithRegistry(reg))
	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	NewMetrics(WithRegistry(reg))
}
