package vdom

import "testing"

func TestCreateElementArgs(t *testing.T) {
	handler := func() {}
	n := Button(
		Class("btn"),
		[]Attr{Role("button"), TabIndex(0)},
		nil,
		OnClick(handler),
		"label",
		Span(Text("x")),
		[]*VNode{I(), nil},
		Key("k1"),
	)

	if n.Tag != "button" || n.Kind != KindElement {
		t.Fatalf("unexpected node %s %s", n.Kind, n.Tag)
	}
	if n.Props["role"] != "button" || n.Props["tabindex"] != 0 {
		t.Errorf("attrs not applied: %v", n.Props)
	}
	if n.Props["onclick"] == nil {
		t.Error("onclick not registered")
	}
	if n.Key != "k1" {
		t.Errorf("Key = %q, want k1", n.Key)
	}
	if len(n.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(n.Children))
	}
	if n.Children[0].Kind != KindText || n.Children[0].Text != "label" {
		t.Error("string argument should become a text child")
	}
}

func TestLaterAttrWins(t *testing.T) {
	n := Div(ID("a"), ID("b"))
	if n.Props["id"] != "b" {
		t.Errorf("id = %v, want b", n.Props["id"])
	}
}

func TestFragmentAndHelpers(t *testing.T) {
	f := Fragment("a", nil, Text("b"), []*VNode{Text("c")})
	if len(f.Children) != 3 {
		t.Errorf("fragment children = %d, want 3", len(f.Children))
	}
	if If(false, Div()) != nil || If(true, Div()) == nil {
		t.Error("If misbehaves")
	}
	if When(false, func() *VNode { panic("called") }) != nil {
		t.Error("When(false) should be nil")
	}
	nodes := Range([]string{"x", "y"}, func(s string, i int) *VNode { return Li(Text(s)) })
	if len(nodes) != 2 {
		t.Errorf("Range produced %d nodes", len(nodes))
	}
}
