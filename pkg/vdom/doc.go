// Package vdom provides a minimal virtual DOM used by the HTML capability kit.
//
// # Core Types
//
// VNode represents elements, text, fragments and raw HTML. Props holds
// attributes and event handlers. Attr and EventHandler are used to build
// Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Nav(Class("tabs"),
//	    A(Href("/items/1/overview"), AriaSelected(true), Text("Overview")),
//	    Button(OnClick(handler), Text("Next")),
//	)
//
// Event handlers stay on the server. The renderer skips them and marks the
// element with a data-on-* attribute instead.
package vdom
