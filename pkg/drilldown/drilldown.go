// Package drilldown lays out entities as cards. Drilling into a card either
// navigates to the entity's details route or opens an inline preview panel.
package drilldown

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vango-dev/headless/pkg/ui"
)

// Navigator routes to an entity's details view.
type Navigator[E any] func(entity E)

// Option configures a Layout.
type Option[E any] func(*Layout[E])

// WithNavigator routes drill-downs through fn. It takes precedence over the
// preview panel.
func WithNavigator[E any](fn Navigator[E]) Option[E] {
	return func(l *Layout[E]) {
		l.navigate = fn
	}
}

// WithPreview enables the inline preview panel. show is its initial
// visibility.
func WithPreview[E any](show bool) Option[E] {
	return func(l *Layout[E]) {
		l.preview = true
		l.show = show
	}
}

// WithSelected preselects an entity for the preview panel.
func WithSelected[E any](entity E) Option[E] {
	return func(l *Layout[E]) {
		l.selected = entity
		l.hasSelected = true
	}
}

// WithLogger sets the logger used when a drill-down has nowhere to go.
func WithLogger[E any](logger zerolog.Logger) Option[E] {
	return func(l *Layout[E]) {
		l.logger = logger
	}
}

// Layout is a card drill-down layout over entities of type E.
type Layout[E any] struct {
	navigate Navigator[E]
	preview  bool
	logger   zerolog.Logger

	mu          sync.Mutex
	entities    []E
	show        bool
	selected    E
	hasSelected bool
}

// New creates a layout.
func New[E any](entities []E, opts ...Option[E]) *Layout[E] {
	l := &Layout[E]{entities: entities, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Entities returns the entities in display order.
func (l *Layout[E]) Entities() []E {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]E, len(l.entities))
	copy(out, l.entities)
	return out
}

// SetEntities replaces the entities.
func (l *Layout[E]) SetEntities(entities []E) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entities = entities
}

// Drilldown opens entity: through the navigator when one is configured,
// else in the preview panel when enabled. With neither, it logs an error and
// does nothing.
func (l *Layout[E]) Drilldown(entity E) {
	switch {
	case l.navigate != nil:
		l.navigate(entity)
	case l.preview:
		l.mu.Lock()
		l.show = true
		l.selected = entity
		l.hasSelected = true
		l.mu.Unlock()
	default:
		l.logger.Error().Msg("drilldown ignored: neither a preview panel nor a routing navigator is configured")
	}
}

// TogglePanel flips the preview panel's visibility.
func (l *Layout[E]) TogglePanel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.show = !l.show
}

// Panel returns the preview panel state.
func (l *Layout[E]) Panel() PanelProps[E] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return PanelProps[E]{
		Entity:      l.selected,
		Selected:    l.hasSelected,
		Show:        l.show,
		TogglePanel: l.TogglePanel,
	}
}

// CardProps are handed to a Card.
type CardProps[E any] struct {
	Entity      E
	OnDrilldown func()
}

// Card renders one entity.
type Card[N, E any] interface {
	Card(props CardProps[E]) N
}

// CardFunc adapts a function to Card.
type CardFunc[N, E any] func(props CardProps[E]) N

// Card implements Card.
func (f CardFunc[N, E]) Card(props CardProps[E]) N { return f(props) }

// PanelProps are handed to a Panel.
type PanelProps[E any] struct {
	// Entity is meaningful only when Selected is true.
	Entity      E
	Selected    bool
	Show        bool
	TogglePanel func()
}

// Panel renders the preview panel.
type Panel[N, E any] interface {
	Panel(props PanelProps[E]) N
}

// PanelFunc adapts a function to Panel.
type PanelFunc[N, E any] func(props PanelProps[E]) N

// Panel implements Panel.
func (f PanelFunc[N, E]) Panel(props PanelProps[E]) N { return f(props) }

// Kit holds the capabilities a layout renders with.
type Kit[N, E any] struct {
	Main ui.Container[N]
	Card Card[N, E]

	// Panel is rendered first when the layout has a preview panel.
	Panel Panel[N, E]
}

// Render renders the optional preview panel followed by one card per
// entity.
func (k Kit[N, E]) Render(l *Layout[E]) N {
	entities := l.Entities()
	children := make([]N, 0, len(entities)+1)
	if l.preview && k.Panel != nil {
		children = append(children, k.Panel.Panel(l.Panel()))
	}
	for _, e := range entities {
		e := e // per-iteration copy; go.mod targets go 1.21 loop semantics
		children = append(children, k.Card.Card(CardProps[E]{
			Entity:      e,
			OnDrilldown: func() { l.Drilldown(e) },
		}))
	}
	return k.Main.Container(children...)
}
