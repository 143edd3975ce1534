// Package html implements the ui capabilities with vdom nodes, so headless
// components can be rendered to HTML by package render.
package html

import (
	"fmt"

	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/ui"
	. "github.com/vango-dev/headless/pkg/vdom"
)

// Kit renders capabilities as vdom elements. The zero value renders tab
// headers as plain links.
type Kit struct {
	// TabAction, when set, renders each tab header as a POST form to
	// TabAction+key carrying From in a hidden "from" field. Hosts use it
	// to change tabs without JavaScript while keeping shared params.
	TabAction string
	From      string
}

var (
	_ ui.Button[*VNode]           = Kit{}
	_ ui.Text[*VNode]             = Kit{}
	_ ui.Container[*VNode]        = Kit{}
	_ ui.ActionBar[*VNode]        = Kit{}
	_ ui.Dialog[*VNode]           = Kit{}
	_ ui.Input[*VNode]            = Kit{}
	_ layout.TabContainer[*VNode] = Kit{}
)

// Button renders a <button>.
func (Kit) Button(p ui.ButtonProps) *VNode {
	var click any
	if p.OnClick != nil {
		click = OnClick(p.OnClick)
	}
	return Button(
		Type("button"),
		Disabled(p.Disabled),
		click,
		p.Label,
	)
}

// Text renders a <span>.
func (Kit) Text(s string) *VNode {
	return Span(s)
}

// Container renders a <div>.
func (Kit) Container(children ...*VNode) *VNode {
	return Div(children)
}

// ActionBar renders the buttons in a right-aligned row.
func (Kit) ActionBar(buttons ...*VNode) *VNode {
	return Div(Class("action-bar"), buttons)
}

// Dialog renders a <dialog>. A closed dialog keeps its children so the
// client can open it without a round trip.
func (Kit) Dialog(p ui.DialogProps, children ...*VNode) *VNode {
	var closeHandler any
	if p.OnClose != nil {
		closeHandler = EventHandler{Event: "onclose", Handler: p.OnClose}
	}
	return Dialog(Open(p.Open), AriaModal(true), closeHandler, children)
}

// Area returns a container rendering a <div> with the given class, e.g.
// "dialog-title".
func (Kit) Area(class string) ui.Container[*VNode] {
	return ui.ContainerFunc[*VNode](func(children ...*VNode) *VNode {
		return Div(Class(class), children)
	})
}

// Input renders a labelled <input> with its error.
func (Kit) Input(p ui.InputProps) *VNode {
	id := "field-" + p.Key
	var input any
	if p.OnChange != nil {
		input = OnInput(p.OnChange)
	}
	value := ""
	if p.Value != nil {
		value = fmt.Sprint(p.Value)
	}
	return Label(
		For(id),
		Class("field"),
		If(p.Label != "", Span(Class("field-label"), p.Label)),
		Input(
			ID(id),
			Name(p.Key),
			Value(value),
			IfAttr(p.Error != "", AriaInvalid(true)),
			input,
		),
	)
}

// TabContainer renders a tab bar and the active panel.
func (k Kit) TabContainer(p layout.TabContainerProps[*VNode]) *VNode {
	headers := make([]*VNode, 0, len(p.Tabs))
	for _, tab := range p.Tabs {
		headers = append(headers, k.tabHeader(tab, p.OnChange))
	}
	return Div(
		Class("tabs"),
		Nav(Role("tablist"), headers),
		Section(Role("tabpanel"), Data("tab", p.ActiveKey), p.Body),
	)
}

func (k Kit) tabHeader(tab layout.TabHeader, onChange func(string)) *VNode {
	var click any
	if onChange != nil {
		key := tab.Key
		click = OnClick(func() { onChange(key) })
	}
	current := IfAttr(tab.Active, AriaCurrent("page"))

	if k.TabAction != "" {
		return Form(
			Method("post"),
			Action(k.TabAction+tab.Key),
			Input(Type("hidden"), Name("from"), Value(k.From)),
			Button(
				Type("submit"),
				Role("tab"),
				AriaSelected(tab.Active),
				Data("tab", tab.Key),
				current,
				click,
				tab.Title,
			),
		)
	}
	return A(
		Href(tab.Href),
		Role("tab"),
		AriaSelected(tab.Active),
		Data("tab", tab.Key),
		current,
		click,
		tab.Title,
	)
}
