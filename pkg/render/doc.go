// Package render converts vdom trees into HTML.
//
// Text and attribute values are escaped; void elements are never closed;
// boolean attributes render as a bare name when true and are omitted when
// false. Event handlers are not rendered: the element gets a data-on-<event>
// marker so a live client can route the event back to the server.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// RenderPage wraps a body in a complete document.
package render
