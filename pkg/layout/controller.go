package layout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/pkg/routepath"
	"github.com/vango-dev/headless/pkg/router"
)

// Controller errors.
var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrDuplicateTab = errors.New("duplicate tab key")
	ErrReentrant    = errors.New("navigation re-entered from the navigate callback")
)

// dispatchKey marks contexts handed to the navigate callback by owner.
type dispatchKey struct{ owner any }

// Option configures a Controller.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	strict   bool
	defaults routepath.Params
}

// WithLogger sets the logger used for warnings about unknown tabs and
// failed syntheses. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStrictParams makes a navigation fail instead of leaving a ":name"
// placeholder when the destination needs a parameter nobody supplied.
func WithStrictParams() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithDefaults sets fallback parameters for direct tab changes. They sit
// below the parameters recovered from the current path.
func WithDefaults(params routepath.Params) Option {
	return func(o *options) {
		o.defaults = params.Clone()
	}
}

// Controller is a route-aware tabbed layout. It owns the active tab key and
// builds each tab's navigation function from the tab templates, the
// caller's endpoint accessor and the caller's navigate callback.
//
// Navigations are serialized: reading the current params, synthesizing the
// destination, calling the navigate callback and switching the active tab
// happen as one step with respect to other navigations.
//
// The navigate callback must not call Navigate, Change or a Navigator of
// the controller dispatching it. Such a call made with the callback's
// context fails with ErrReentrant; one made with an unrelated context
// deadlocks.
type Controller[N any] struct {
	// dispatch serializes whole navigations; mu guards the fields below.
	dispatch sync.Mutex
	mu       sync.RWMutex

	tabs       []Tab[N]
	index      map[string]int
	defaultKey string
	active     string

	endpoint router.EndpointFunc
	navigate router.NavigateFunc
	opts     options
}

// NewController creates a controller focused on defaultKey. An empty
// defaultKey selects the first tab.
func NewController[N any](tabs []Tab[N], defaultKey string, endpoint router.EndpointFunc, navigate router.NavigateFunc, opts ...Option) (*Controller[N], error) {
	if endpoint == nil {
		return nil, errors.New("layout: endpoint accessor is required")
	}
	if navigate == nil {
		return nil, errors.New("layout: navigate callback is required")
	}

	c := &Controller[N]{
		endpoint:   endpoint,
		navigate:   navigate,
		defaultKey: defaultKey,
		opts:       options{logger: zerolog.Nop()},
	}
	for _, opt := range opts {
		opt(&c.opts)
	}

	if err := c.SetTabs(tabs); err != nil {
		return nil, err
	}
	if len(tabs) > 0 && defaultKey != "" {
		if _, ok := c.index[defaultKey]; !ok {
			return nil, c.unknownTabError(defaultKey)
		}
	}
	return c, nil
}

// SetTabs replaces the tab set wholesale. The active tab is kept when it is
// still registered; otherwise focus returns to the default key, or to the
// first tab when the default is gone as well.
func (c *Controller[N]) SetTabs(tabs []Tab[N]) error {
	index := make(map[string]int, len(tabs))
	for i, t := range tabs {
		if _, dup := index[t.Key]; dup {
			return herrors.New("H003").
				WithDetail(fmt.Sprintf("tab key %q is registered twice", t.Key)).
				Wrap(ErrDuplicateTab)
		}
		index[t.Key] = i
	}

	copied := make([]Tab[N], len(tabs))
	copy(copied, tabs)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tabs = copied
	c.index = index

	if _, ok := index[c.active]; ok {
		return nil
	}
	switch _, ok := index[c.defaultKey]; {
	case ok, len(copied) == 0:
		c.active = c.defaultKey
	default:
		c.active = copied[0].Key
	}
	return nil
}

// Tabs returns the registered tabs in order.
func (c *Controller[N]) Tabs() []Tab[N] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Tab[N], len(c.tabs))
	copy(out, c.tabs)
	return out
}

// ActiveKey returns the focused tab key.
func (c *Controller[N]) ActiveKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Params returns the active tab's parameters recovered from the current
// endpoint. With no active tab registered the result is empty.
func (c *Controller[N]) Params() routepath.Params {
	c.mu.RLock()
	active, ok := c.lookupLocked(c.active)
	c.mu.RUnlock()
	if !ok {
		return routepath.Params{}
	}
	return routepath.Match(active.Template, c.endpoint())
}

// Resolve returns the key of the first tab whose template has exactly the
// shape of path.
func (c *Controller[N]) Resolve(path string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tabs {
		if t.Template.Matches(path) {
			return t.Key, true
		}
	}
	return "", false
}

// Sync focuses the tab that owns path without navigating. Hosts call it when
// the location changed outside the controller, e.g. on page load.
func (c *Controller[N]) Sync(path string) bool {
	key, ok := c.Resolve(path)
	if !ok {
		return false
	}
	c.mu.Lock()
	c.active = key
	c.mu.Unlock()
	return true
}

// Navigate moves to the tab with the given key. The current endpoint is
// matched against the active tab's template, params override the values
// whose names the destination declares, the destination path is synthesized
// and passed to the navigate callback, and finally the destination becomes
// the active tab.
func (c *Controller[N]) Navigate(ctx context.Context, key string, params routepath.Params) error {
	if err := c.checkReentry(ctx, key); err != nil {
		return err
	}
	c.dispatch.Lock()
	defer c.dispatch.Unlock()
	return c.navigateLocked(ctx, key, params)
}

// Change is the direct tab-change entry point used by tab headers. The
// active tab's parameters, over the configured defaults, are carried to the
// destination.
func (c *Controller[N]) Change(ctx context.Context, key string) error {
	if err := c.checkReentry(ctx, key); err != nil {
		return err
	}
	c.dispatch.Lock()
	defer c.dispatch.Unlock()

	if _, ok := c.lookup(key); !ok {
		return c.warnUnknown(key)
	}

	params := c.opts.defaults.Clone()
	for k, v := range c.Params() {
		params[k] = v
	}
	return c.navigateLocked(ctx, key, params)
}

// Navigator returns the navigation function of the tab with the given key.
// For an unregistered key a warning is logged and the returned function does
// nothing.
func (c *Controller[N]) Navigator(key string) Navigator {
	if _, ok := c.lookup(key); !ok {
		c.warnUnknown(key)
		return func(context.Context, routepath.Params) {}
	}
	return c.navigatorFor(key)
}

// Navigators returns the navigation functions of every tab.
func (c *Controller[N]) Navigators() Navigators {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(Navigators, len(c.tabs))
	for _, t := range c.tabs {
		out[t.Key] = c.navigatorFor(t.Key)
	}
	return out
}

// PathFor returns the path Navigate would hand to the navigate callback,
// without navigating.
func (c *Controller[N]) PathFor(key string, params routepath.Params) (string, error) {
	target, ok := c.lookup(key)
	if !ok {
		return "", c.unknownTabError(key)
	}
	nav, err := c.plan(target, params)
	if err != nil {
		return "", err
	}
	return nav.Path, nil
}

func (c *Controller[N]) navigatorFor(key string) Navigator {
	return func(ctx context.Context, params routepath.Params) {
		if err := c.Navigate(ctx, key, params); err != nil {
			c.opts.logger.Warn().Err(err).Str("tab", key).Msg("tab navigation failed")
		}
	}
}

func (c *Controller[N]) navigateLocked(ctx context.Context, key string, params routepath.Params) error {
	target, ok := c.lookup(key)
	if !ok {
		return c.warnUnknown(key)
	}

	nav, err := c.plan(target, params)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	c.navigate(context.WithValue(ctx, dispatchKey{c}, true), nav)

	c.mu.Lock()
	c.active = key
	c.mu.Unlock()

	c.opts.logger.Debug().
		Str("from", nav.From).
		Str("to", nav.To).
		Str("path", nav.Path).
		Msg("tab navigation")
	return nil
}

// checkReentry refuses a navigation started from inside this controller's
// own navigate callback, which would otherwise wait on dispatch forever.
func (c *Controller[N]) checkReentry(ctx context.Context, key string) error {
	if ctx == nil || ctx.Value(dispatchKey{c}) == nil {
		return nil
	}
	return herrors.New("H005").
		WithDetail(fmt.Sprintf("navigation to %q started inside a navigate callback", key)).
		Wrap(ErrReentrant)
}

// plan computes the navigation to target without side effects.
func (c *Controller[N]) plan(target Tab[N], params routepath.Params) (router.Navigation, error) {
	c.mu.RLock()
	from := c.active
	active, hasActive := c.lookupLocked(from)
	c.mu.RUnlock()

	merged := routepath.Params{}
	if hasActive {
		merged = routepath.Match(active.Template, c.endpoint())
	}
	for _, name := range target.Template.Names() {
		if v, ok := params[name]; ok {
			merged[name] = v
		}
	}

	var path string
	if c.opts.strict {
		p, err := routepath.SynthesizeStrict(target.Template, merged)
		if err != nil {
			return router.Navigation{}, herrors.New("H002").
				WithDetail(fmt.Sprintf("tab %q: %v", target.Key, err)).
				Wrap(err)
		}
		path = p
	} else {
		path = routepath.Synthesize(target.Template, merged)
	}

	return router.Navigation{
		Path:     path,
		Segments: target.Template.Segments(),
		Params:   target.Template.Filter(merged),
		From:     from,
		To:       target.Key,
	}, nil
}

func (c *Controller[N]) lookup(key string) (Tab[N], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lookupLocked(key)
}

func (c *Controller[N]) lookupLocked(key string) (Tab[N], bool) {
	i, ok := c.index[key]
	if !ok {
		return Tab[N]{}, false
	}
	return c.tabs[i], true
}

// warnUnknown logs the unknown key and returns the matching error.
func (c *Controller[N]) warnUnknown(key string) error {
	err := c.unknownTabError(key)
	event := c.opts.logger.Warn().Str("key", key)
	if err.Suggestion != "" {
		event = event.Str("suggestion", err.Suggestion)
	}
	event.Msgf("could not find navigator for tab %q", key)
	return err
}

func (c *Controller[N]) unknownTabError(key string) *herrors.Error {
	err := herrors.New("H001").
		WithDetail(fmt.Sprintf("no tab is registered under %q", key)).
		Wrap(ErrUnknownTab)
	if s := c.closestKey(key); s != "" {
		err = err.WithSuggestion(fmt.Sprintf("did you mean %q?", s))
	}
	return err
}

// closestKey returns the registered key nearest to key by edit distance, or
// "" when nothing is close enough to be a plausible typo.
func (c *Controller[N]) closestKey(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	best, bestDist := "", -1
	for _, t := range c.tabs {
		d := levenshtein.ComputeDistance(key, t.Key)
		if bestDist < 0 || d < bestDist {
			best, bestDist = t.Key, d
		}
	}
	limit := len(key) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
