// Package middleware provides observability for navigations and form
// submissions.
//
// # Prometheus Metrics
//
// Metrics counts navigations and times submit callbacks:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	navigate := router.Chain(hist.Navigate, m.Navigation())
//	submit := m.Submit("profile", save)
//
// Expose the registry with promhttp.
//
// # OpenTelemetry Tracing
//
// Tracing wraps the same two surfaces in spans. Navigation spans carry the
// source and target tab, the synthesized path and the target template;
// submit spans record the callback error.
//
//	t := middleware.NewTracing(middleware.WithTracerName("my-app"))
//	navigate := router.Chain(hist.Navigate, t.Navigation(), m.Navigation())
//
// The navigate callback and the submit callback receive the span context,
// so downstream calls inherit the trace.
package middleware
