package vdom

import "strconv"

// createElement builds an element node from a mixed argument list.
// Arguments may be Attr, []Attr, EventHandler, *VNode, []*VNode, Component,
// string (text) or nil (ignored, for conditional attributes and children).
// A later attribute with the same key replaces an earlier one.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for i, arg := range args {
		switch v := arg.(type) {
		case Attr:
			node.setAttr(v)
		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}
		case EventHandler:
			node.Props[v.Event] = v.Handler
		default:
			node.appendChild(arg, strconv.Itoa(i))
		}
	}

	return node
}

// appendChild adds a child argument: a node, a node slice, a component or
// text. nil and unknown values are ignored. slot is the argument position,
// which stays the same whether or not a conditional child is present.
func (v *VNode) appendChild(arg any, slot string) {
	switch c := arg.(type) {
	case *VNode:
		if c != nil {
			c.slot = slot
			v.Children = append(v.Children, c)
		}
	case []*VNode:
		for j, child := range c {
			v.appendChild(child, slot+"."+strconv.Itoa(j))
		}
	case Component:
		v.Children = append(v.Children, &VNode{Kind: KindComponent, Comp: c, slot: slot})
	case string:
		t := Text(c)
		t.slot = slot
		v.Children = append(v.Children, t)
	}
}

func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	v.Props[a.Key] = a.Value
}

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// Content sectioning elements

func Header(args ...any) *VNode  { return createElement("header", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

// Text content elements

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }

// Inline text semantics

func A(args ...any) *VNode      { return createElement("a", args) }
func Strong(args ...any) *VNode { return createElement("strong", args) }
func I(args ...any) *VNode      { return createElement("i", args) }
func Small(args ...any) *VNode  { return createElement("small", args) }
func Code(args ...any) *VNode   { return createElement("code", args) }

// Forms

func Button(args ...any) *VNode { return createElement("button", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }
