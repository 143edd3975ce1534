// Package toggle pairs a component with a button that shows and hides it.
package toggle

import (
	"sync"

	"github.com/vango-dev/headless/pkg/ui"
)

// DefaultLabel is the button label when none is configured.
const DefaultLabel = "Open"

// State is the initial toggle state.
type State struct {
	Visible bool
	Label   string
}

// Toggle tracks the visibility of one component.
type Toggle struct {
	mu      sync.Mutex
	visible bool
	label   string
}

// New creates a toggle.
func New(s State) *Toggle {
	if s.Label == "" {
		s.Label = DefaultLabel
	}
	return &Toggle{visible: s.Visible, label: s.Label}
}

// Toggle flips visibility.
func (t *Toggle) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = !t.visible
}

// Close hides the component.
func (t *Toggle) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = false
}

// Visible reports whether the component is shown.
func (t *Toggle) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Label returns the button label.
func (t *Toggle) Label() string {
	return t.label
}

// Inner is handed to the toggleable component.
type Inner struct {
	Visible bool
	OnClose func()
}

// Toggleable renders the component a toggle controls.
type Toggleable[N any] interface {
	Toggleable(inner Inner) N
}

// ToggleableFunc adapts a function to Toggleable.
type ToggleableFunc[N any] func(inner Inner) N

// Toggleable implements Toggleable.
func (f ToggleableFunc[N]) Toggleable(inner Inner) N { return f(inner) }

// Kit holds the capabilities a toggle renders with.
type Kit[N any] struct {
	Component Toggleable[N]
	Button    ui.Button[N]

	// Container groups the component and its button.
	Container ui.Container[N]
}

// Render renders the component followed by its button. disabled is passed
// to the button.
func (k Kit[N]) Render(t *Toggle, disabled bool) N {
	return k.Container.Container(
		k.Component.Toggleable(Inner{Visible: t.Visible(), OnClose: t.Close}),
		k.Button.Button(ui.ButtonProps{
			Label:    t.Label(),
			OnClick:  t.Toggle,
			Disabled: disabled,
		}),
	)
}
