package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/headless/pkg/layout"
	hmw "github.com/vango-dev/headless/pkg/middleware"
	"github.com/vango-dev/headless/pkg/render"
	"github.com/vango-dev/headless/pkg/router"
	"github.com/vango-dev/headless/pkg/vdom"
)

// Option configures a Server.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	registry *prometheus.Registry
	tracer   trace.TracerProvider
}

// WithLogger sets the logger. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegistry sets the registry metrics are registered on and served from.
// Default: a fresh registry per Server.
func WithRegistry(r *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithTracerProvider sets the provider navigation spans come from.
// Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracer = tp
	}
}

// Server hosts a tab layout over HTTP. Every visitor gets a session with its
// own controller; pages link or post tab changes back to the server, and a
// websocket lets live clients navigate without reloading.
type Server struct {
	config   Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	metrics  *hmw.Metrics
	tracing  *hmw.Tracing
	renderer *render.Renderer
	sessions *sessionManager
	upgrader websocket.Upgrader
	router   chi.Router

	httpServer *http.Server
}

// New validates the layout and builds the router.
func New(cfg Config, opts ...Option) (*Server, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	cfg = cfg.withDefaults()
	if len(cfg.Tabs) == 0 {
		return nil, errors.New("server: no tabs configured")
	}

	tracingOpts := []hmw.OTelOption{}
	if o.tracer != nil {
		tracingOpts = append(tracingOpts, hmw.WithTracerProvider(o.tracer))
	}

	s := &Server{
		config:   cfg,
		logger:   o.logger.With().Str("component", "server").Logger(),
		registry: o.registry,
		metrics:  hmw.NewMetrics(hmw.WithRegistry(o.registry)),
		tracing:  hmw.NewTracing(tracingOpts...),
		renderer: render.NewRenderer(render.RendererConfig{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}

	// Fail at startup, not on the first visitor, when the layout is invalid.
	if _, err := s.newSession("probe"); err != nil {
		return nil, err
	}

	active := promauto.With(o.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "headless",
		Name:      "sessions_active",
		Help:      "Number of live sessions",
	})
	s.sessions = newSessionManager(s.newSession, cfg.SessionIdleTimeout, cfg.CleanupInterval, active, s.logger)
	s.sessions.start()
	s.router = s.routes()
	return s, nil
}

// newSession builds a session whose controller reads and writes the
// session's location through the metrics and tracing middleware.
func (s *Server) newSession(id string) (*Session, error) {
	sess := &Session{ID: id}
	navigate := router.Chain(sess.navigate, s.tracing.Navigation(), s.metrics.Navigation())

	opts := []layout.Option{
		layout.WithLogger(s.logger.With().Str("session", id).Logger()),
		layout.WithDefaults(s.config.Defaults),
	}
	if s.config.Strict {
		opts = append(opts, layout.WithStrictParams())
	}

	c, err := layout.NewController(s.config.Tabs, s.config.DefaultTab, sess.Location, navigate, opts...)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	sess.controller = c
	return sess, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	if s.config.MetricsPath != "" {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	if s.config.LivePath != "" {
		r.Get(s.config.LivePath, s.handleLive)
	}
	r.Post(s.config.TabAction+"{key}", s.handleTabChange)
	r.Get("/*", s.handlePage)
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Sessions returns the number of live sessions.
func (s *Server) Sessions() int {
	return s.sessions.Count()
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.config.Address).Msg("server starting")
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.sessions.Shutdown()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown drops every session and stops the HTTP server if it is running.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sessions.Shutdown()
	s.sessions.wait()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("shutdown error")
			return err
		}
	}
	s.logger.Info().Msg("server shutdown complete")
	return nil
}

// requestLogger logs one line per request with chi's request id.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

var _ http.Handler = (*Server)(nil)

// page wraps the layout in the document body.
func (s *Server) page(body *vdom.VNode) render.PageData {
	return render.PageData{
		Title: s.config.Title,
		Body:  vdom.Main(body),
	}
}
