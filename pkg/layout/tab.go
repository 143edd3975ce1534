package layout

import (
	"context"

	"github.com/vango-dev/headless/pkg/routepath"
	"github.com/vango-dev/headless/pkg/router"
)

// Tab describes one routable view of a layout. Tabs are immutable once
// handed to a Controller; SetTabs replaces the whole set.
type Tab[N any] struct {
	// Key identifies the tab among its siblings.
	Key string

	// Template is the tab's path template, e.g. "/items/:id/overview".
	Template routepath.Template

	// Title is the header label.
	Title string

	// View renders the tab body.
	View View[N]
}

// NewTab parses pattern and builds a Tab.
func NewTab[N any](key, pattern, title string, view View[N]) (Tab[N], error) {
	t, err := routepath.Parse(pattern)
	if err != nil {
		return Tab[N]{}, err
	}
	return Tab[N]{Key: key, Template: t, Title: title, View: view}, nil
}

// Navigator is a tab's navigation function. Calling it with params moves to
// that tab, keeping every parameter the current path shares with the tab's
// template and overriding with the supplied values.
type Navigator func(ctx context.Context, params routepath.Params)

// Navigators maps tab keys to their navigation functions.
type Navigators map[string]Navigator

// ViewProps are handed to a tab's View.
type ViewProps struct {
	// Params are the active tab's parameters recovered from the current path.
	Params routepath.Params

	// Navigators lets a view move to any tab of the layout.
	Navigators Navigators
}

// Decode parses Params into a struct with `param` tags.
func (p ViewProps) Decode(target any) error {
	return router.NewParamParser().Parse(p.Params, target)
}

// View renders a tab body.
type View[N any] interface {
	View(props ViewProps) N
}

// ViewFunc adapts a function to View.
type ViewFunc[N any] func(props ViewProps) N

// View implements View.
func (f ViewFunc[N]) View(props ViewProps) N { return f(props) }

// TabHeader describes one entry of the tab bar.
type TabHeader struct {
	Key    string
	Title  string
	Href   string
	Active bool
}

// TabContainerProps are handed to a TabContainer.
type TabContainerProps[N any] struct {
	// ActiveKey is the focused tab.
	ActiveKey string

	// Tabs are the headers in registration order.
	Tabs []TabHeader

	// OnChange switches to the tab with the given key.
	OnChange func(key string)

	// Params are the active tab's parameters.
	Params routepath.Params

	// Body is the rendered view of the active tab.
	Body N
}

// TabContainer renders the tab bar around the active body.
type TabContainer[N any] interface {
	TabContainer(props TabContainerProps[N]) N
}

// TabContainerFunc adapts a function to TabContainer.
type TabContainerFunc[N any] func(props TabContainerProps[N]) N

// TabContainer implements TabContainer.
func (f TabContainerFunc[N]) TabContainer(props TabContainerProps[N]) N { return f(props) }
