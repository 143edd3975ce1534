package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Key sets the node's identity among its siblings. It is not rendered.
func Key(key string) Attr { return attr("key", key) }

// Data creates a data-* attribute.
// Example: Data("tab", "overview") → data-tab="overview"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// AriaInvalid sets the aria-invalid attribute.
func AriaInvalid(invalid bool) Attr { return attr("aria-invalid", invalid) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// Link attributes

// Href sets the href attribute.
func Href(href string) Attr { return attr("href", href) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Method sets the form method attribute.
func Method(method string) Attr { return attr("method", method) }

// Action sets the form action attribute.
func Action(action string) Attr { return attr("action", action) }

// For sets the for attribute of a label.
func For(id string) Attr { return attr("for", id) }

// Disabled sets the disabled boolean attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Open sets the open boolean attribute of a dialog.
func Open(open bool) Attr { return attr("open", open) }

// Script attributes

// Src sets the src attribute.
func Src(src string) Attr { return attr("src", src) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Events

// OnClick registers a click handler.
func OnClick(fn func()) EventHandler {
	return EventHandler{Event: "onclick", Handler: fn}
}

// OnInput registers an input handler receiving the new value.
func OnInput(fn func(value any)) EventHandler {
	return EventHandler{Event: "oninput", Handler: fn}
}
