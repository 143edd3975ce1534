package server

import (
	"net/http"
	"time"

	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/routepath"
	"github.com/vango-dev/headless/pkg/vdom"
)

// Config configures the HTTP host.
type Config struct {
	// Address is the listen address (default: ":8080").
	Address string

	// Title is the document title of rendered pages.
	Title string

	// Tabs is the layout every session renders. Keys must be unique.
	Tabs []layout.Tab[*vdom.VNode]

	// DefaultTab is active until a path selects another tab. Empty means
	// the first tab.
	DefaultTab string

	// Defaults seed parameters on tab changes.
	Defaults routepath.Params

	// Strict makes tab changes fail when the target template has a
	// parameter no value is known for.
	Strict bool

	// TabAction is the prefix tab-change forms post to (default: "/_tabs/").
	TabAction string

	// MetricsPath serves Prometheus metrics. Empty disables the endpoint.
	MetricsPath string

	// LivePath serves the websocket navigation channel. Empty disables it.
	LivePath string

	// SessionIdleTimeout drops sessions not used for this long
	// (default: 30m).
	SessionIdleTimeout time.Duration

	// CleanupInterval is how often idle sessions are dropped (default: 1m).
	CleanupInterval time.Duration

	// ReadHeaderTimeout, WriteTimeout and ShutdownTimeout bound the
	// underlying http.Server.
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration

	// LiveReadTimeout closes idle websocket connections (default: 2m).
	LiveReadTimeout time.Duration

	// CheckOrigin validates websocket upgrade origins. Nil uses the
	// gorilla default (same origin only).
	CheckOrigin func(r *http.Request) bool

	// SecureCookies marks the session cookie Secure.
	SecureCookies bool
}

// DefaultConfig returns a Config with defaults for everything but the tabs.
func DefaultConfig() Config {
	return Config{
		Address:            ":8080",
		Title:              "headless",
		TabAction:          "/_tabs/",
		MetricsPath:        "/metrics",
		LivePath:           "/_live",
		SessionIdleTimeout: 30 * time.Minute,
		CleanupInterval:    time.Minute,
		ReadHeaderTimeout:  5 * time.Second,
		WriteTimeout:       30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		LiveReadTimeout:    2 * time.Minute,
	}
}

// withDefaults fills zero durations and paths that must not be empty.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.TabAction == "" {
		c.TabAction = d.TabAction
	}
	if c.SessionIdleTimeout <= 0 {
		c.SessionIdleTimeout = d.SessionIdleTimeout
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = d.CleanupInterval
	}
	if c.ReadHeaderTimeout <= 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.LiveReadTimeout <= 0 {
		c.LiveReadTimeout = d.LiveReadTimeout
	}
	return c
}
