package router

import (
	"context"
	"sync"

	"github.com/vango-dev/headless/pkg/routepath"
)

// Navigation describes a synthesized destination handed to a NavigateFunc.
type Navigation struct {
	// Path is the concrete destination path, e.g. "/layout1/T/cat/100".
	Path string

	// Segments are the destination template's raw segments, parameter
	// markers included (["layout1", ":tag", "cat", ":number"]).
	Segments []string

	// Params are the parameters substituted into Path, restricted to names
	// the destination template declares.
	Params routepath.Params

	// From and To are the tab keys the navigation moves between.
	From string
	To   string
}

// NavigateFunc performs the actual URL change in the host's router.
// It must not call back into the component that issued the navigation.
type NavigateFunc func(ctx context.Context, nav Navigation)

// PathFunc adapts a callback that only wants the destination path.
func PathFunc(fn func(path string)) NavigateFunc {
	return func(_ context.Context, nav Navigation) {
		fn(nav.Path)
	}
}

// EndpointFunc reads the current concrete path from the host's routing
// context.
type EndpointFunc func() string

// StaticEndpoint returns an EndpointFunc that always reports path.
func StaticEndpoint(path string) EndpointFunc {
	return func() string { return path }
}

// History is an in-memory location for hosts without a browser, such as the
// terminal program and tests. Its Navigate method is a NavigateFunc and its
// Endpoint method an EndpointFunc.
type History struct {
	mu      sync.Mutex
	entries []string
}

// NewHistory creates a history positioned at start.
func NewHistory(start string) *History {
	return &History{entries: []string{start}}
}

// Navigate pushes nav.Path.
func (h *History) Navigate(_ context.Context, nav Navigation) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, nav.Path)
}

// Endpoint returns the current path.
func (h *History) Endpoint() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

// Back pops the current entry, never removing the first one.
func (h *History) Back() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) > 1 {
		h.entries = h.entries[:len(h.entries)-1]
	}
}

// Entries returns a copy of the visited paths, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
