package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vango-dev/headless/internal/config"
	herrors "github.com/vango-dev/headless/internal/errors"
	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/routepath"
	"github.com/vango-dev/headless/pkg/vdom"
)

// parseAssignments turns name=value arguments into params.
func parseAssignments(args []string) (routepath.Params, error) {
	params := routepath.Params{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, herrors.New("H080").
				WithDetail(fmt.Sprintf("%q is not a name=value pair", arg)).
				WithSuggestion("Pass parameters as id=42")
		}
		params[name] = value
	}
	return params, nil
}

// formatParams prints params as sorted name=value lines.
func formatParams(params routepath.Params) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%s\n", name, params[name])
	}
	return b.String()
}

// buildTabs creates the configured tabs, rendering each with view.
func buildTabs[N any](cfg config.LayoutConfig, view func(tab config.TabConfig) layout.View[N]) ([]layout.Tab[N], error) {
	tabs := make([]layout.Tab[N], 0, len(cfg.Tabs))
	for _, tc := range cfg.Tabs {
		title := tc.Title
		if title == "" {
			title = tc.Key
		}
		tab, err := layout.NewTab(tc.Key, tc.Template, title, view(tc))
		if err != nil {
			return nil, herrors.New("H020").
				WithDetail(fmt.Sprintf("tab %q: %v", tc.Key, err)).
				Wrap(err)
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

// controllerOptions maps the layout config to controller options.
func controllerOptions(cfg config.LayoutConfig, log zerolog.Logger) []layout.Option {
	opts := []layout.Option{
		layout.WithLogger(log),
		layout.WithDefaults(cfg.Defaults),
	}
	if cfg.Strict {
		opts = append(opts, layout.WithStrictParams())
	}
	return opts
}

// textView renders a tab as its title and current params.
func textView(tc config.TabConfig) layout.View[string] {
	return layout.ViewFunc[string](func(p layout.ViewProps) string {
		body := strings.TrimRight(formatParams(p.Params), "\n")
		if body == "" {
			return tc.Template
		}
		return tc.Template + "\n" + body
	})
}

// htmlView renders a tab as a definition list of its params.
func htmlView(tc config.TabConfig) layout.View[*vdom.VNode] {
	return layout.ViewFunc[*vdom.VNode](func(p layout.ViewProps) *vdom.VNode {
		names := make([]string, 0, len(p.Params))
		for name := range p.Params {
			names = append(names, name)
		}
		sort.Strings(names)

		items := make([]*vdom.VNode, 0, len(names))
		for _, name := range names {
			items = append(items, vdom.Li(vdom.Strong(name), " ", p.Params[name]))
		}
		return vdom.Article(
			vdom.H2(tc.Title),
			vdom.P(vdom.Class("template"), tc.Template),
			vdom.Ul(vdom.Class("params"), items),
		)
	})
}

// startPath returns the path of the default tab filled with the defaults.
func startPath(cfg config.LayoutConfig) string {
	key := cfg.DefaultKey()
	for _, tc := range cfg.Tabs {
		if tc.Key == key {
			return routepath.Synthesize(routepath.MustParse(tc.Template), cfg.Defaults)
		}
	}
	return "/"
}
