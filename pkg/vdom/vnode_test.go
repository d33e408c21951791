package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", &VNode{Kind: KindText, Text: "hello"}, false},
		{"element without handlers", &VNode{Kind: KindElement, Tag: "div", Props: Props{"class": "test"}}, false},
		{"element with onclick", &VNode{Kind: KindElement, Tag: "button", Props: Props{"onclick": func() {}}}, true},
		{"nil handler", &VNode{Kind: KindElement, Tag: "button", Props: Props{"onclick": nil}}, false},
		{"bare on prop", &VNode{Kind: KindElement, Tag: "div", Props: Props{"on": "x"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasClass(t *testing.T) {
	n := Div(Class("vango-btn", "", "active"))
	if !n.HasClass("active") || !n.HasClass("vango-btn") {
		t.Error("expected both classes")
	}
	if n.HasClass("act") {
		t.Error("HasClass should match whole class names")
	}
	if got := n.Props["class"]; got != "vango-btn active" {
		t.Errorf("class = %q, want %q", got, "vango-btn active")
	}
}

func TestClassIf(t *testing.T) {
	n := Div(Class("a", ClassIf(false, "b"), ClassIf(true, "c")))
	if got := n.Props["class"]; got != "a c" {
		t.Errorf("class = %q, want %q", got, "a c")
	}
}

type recordingRef struct{ el Element }

func (r *recordingRef) Attach(el Element) { r.el = el }
func (r *recordingRef) Detach()           { r.el = nil }

func TestNodeRefAttr(t *testing.T) {
	ref := &recordingRef{}
	n := Div(NodeRef(ref))
	if n.Ref() != ref {
		t.Error("Ref() should return the bound ref")
	}
	if Div().Ref() != nil {
		t.Error("Ref() should be nil without NodeRef")
	}
	if !NodeRef(nil).IsEmpty() {
		t.Error("NodeRef(nil) should be an empty attribute")
	}
}
