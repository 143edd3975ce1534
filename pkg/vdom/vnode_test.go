package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	clicked := false
	node := Div(
		Class("card"),
		[]Attr{ID("c1"), Key("k1")},
		IfAttr(false, Data("x", "y")),
		nil,
		"hello",
		Span("child"),
		[]*VNode{nil, P("para")},
		OnClick(func() { clicked = true }),
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %v %q", node.Kind, node.Tag)
	}
	if node.Key != "k1" {
		t.Errorf("Key = %q, want k1", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key must not be stored as a prop")
	}
	if _, ok := node.Props["data-x"]; ok {
		t.Error("IfAttr(false) added an attribute")
	}
	if node.Props["class"] != "card" || node.Props["id"] != "c1" {
		t.Errorf("Props = %v", node.Props)
	}
	if len(node.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
		t.Errorf("first child = %+v, want text hello", node.Children[0])
	}

	if !node.IsInteractive() {
		t.Error("IsInteractive = false with an onclick handler")
	}
	node.Handler("click").(func())()
	if !clicked {
		t.Error("handler not stored")
	}
}

func TestFindAndTextContent(t *testing.T) {
	tree := Nav(
		A(Href("/a"), Data("tab", "a"), "Alpha"),
		A(Href("/b"), Data("tab", "b"), Text("Beta")),
	)

	found := tree.Find(func(n *VNode) bool { return n.Props["data-tab"] == "b" })
	if found == nil || found.Props["href"] != "/b" {
		t.Fatalf("Find = %+v", found)
	}
	if got := tree.TextContent(); got != "AlphaBeta" {
		t.Errorf("TextContent = %q, want AlphaBeta", got)
	}
	if tree.Find(func(n *VNode) bool { return n.Tag == "table" }) != nil {
		t.Error("Find matched a missing tag")
	}
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindRaw, "Raw"},
		{VKind(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("VKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("input") || IsVoidElement("div") {
		t.Error("IsVoidElement misclassified input/div")
	}
}
