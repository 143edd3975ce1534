// Package ui declares the visual capabilities headless components are built
// from. Each capability is a one-method interface generic over the node type
// N its implementation produces: *vdom.VNode for the HTML kit, string for the
// terminal kit, or anything else a host renders.
//
// Components only ever call these interfaces; they never inspect the
// concrete type behind them. Func adapters let a plain function satisfy a
// capability:
//
//	var submit ui.Button[string] = ui.ButtonFunc[string](func(p ui.ButtonProps) string {
//	    return "[" + p.Label + "]"
//	})
package ui

// ButtonProps are handed to a Button.
type ButtonProps struct {
	Label    string
	OnClick  func()
	Disabled bool
}

// Button renders a clickable control.
type Button[N any] interface {
	Button(props ButtonProps) N
}

// ButtonFunc adapts a function to Button.
type ButtonFunc[N any] func(props ButtonProps) N

// Button implements Button.
func (f ButtonFunc[N]) Button(props ButtonProps) N { return f(props) }

// Text renders a plain string.
type Text[N any] interface {
	Text(s string) N
}

// TextFunc adapts a function to Text.
type TextFunc[N any] func(s string) N

// Text implements Text.
func (f TextFunc[N]) Text(s string) N { return f(s) }

// Container groups children. Dialog title, content and action areas are
// containers too.
type Container[N any] interface {
	Container(children ...N) N
}

// ContainerFunc adapts a function to Container.
type ContainerFunc[N any] func(children ...N) N

// Container implements Container.
func (f ContainerFunc[N]) Container(children ...N) N { return f(children...) }

// ActionBar lays out a row of rendered buttons.
type ActionBar[N any] interface {
	ActionBar(buttons ...N) N
}

// ActionBarFunc adapts a function to ActionBar.
type ActionBarFunc[N any] func(buttons ...N) N

// ActionBar implements ActionBar.
func (f ActionBarFunc[N]) ActionBar(buttons ...N) N { return f(buttons...) }

// DialogProps are handed to a Dialog.
type DialogProps struct {
	Open    bool
	OnClose func()
}

// Dialog renders modal chrome around its children.
type Dialog[N any] interface {
	Dialog(props DialogProps, children ...N) N
}

// DialogFunc adapts a function to Dialog.
type DialogFunc[N any] func(props DialogProps, children ...N) N

// Dialog implements Dialog.
func (f DialogFunc[N]) Dialog(props DialogProps, children ...N) N { return f(props, children...) }

// InputProps are handed to an Input.
type InputProps struct {
	// Key is the form field key.
	Key string

	// Label is the field's caption.
	Label string

	// Value is the field's current value, possibly invalid.
	Value any

	// Error is the field's validation message, empty when valid.
	Error string

	// OnChange reports a new value back to the form.
	OnChange func(value any)
}

// Input renders an editable field.
type Input[N any] interface {
	Input(props InputProps) N
}

// InputFunc adapts a function to Input.
type InputFunc[N any] func(props InputProps) N

// Input implements Input.
func (f InputFunc[N]) Input(props InputProps) N { return f(props) }
