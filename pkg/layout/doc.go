// Package layout provides a route-aware tabbed layout.
//
// Each tab owns a path template. The Controller keeps the active tab key and
// derives, for every tab, a navigation function that carries the parameters
// shared between the current tab's template and the destination's template:
//
//	tabs := []layout.Tab[string]{
//	    must(layout.NewTab[string]("overview", "/items/:id/overview", "Overview", overview)),
//	    must(layout.NewTab[string]("history", "/items/:id/history/:page", "History", history)),
//	}
//	c, err := layout.NewController(tabs, "overview", hist.Endpoint, hist.Navigate)
//
//	// at /items/42/overview
//	c.Navigator("history")(ctx, routepath.Params{"page": "2"}) // -> /items/42/history/2
//
// Requesting the navigator of an unregistered key logs a warning and returns
// a function that does nothing.
//
// The controller never renders by itself. Render hands a TabContainer the
// headers and the active view's output, whatever node type N the host uses.
package layout
