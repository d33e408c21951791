package vdom

import (
	"fmt"
	"strconv"
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	HID      string    // Hydration ID (assigned during render)

	slot string // argument position in the parent's constructor
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers and needs a HID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, value := range v.Props {
		if value != nil && isEventHandler(key) {
			return true
		}
	}
	return false
}

// Ref returns the element reference bound to this node, if any.
func (v *VNode) Ref() ElementRef {
	if v == nil || v.Kind != KindElement {
		return nil
	}
	ref, _ := v.Props[refProp].(ElementRef)
	return ref
}

// HasClass reports whether the node's class attribute contains class.
func (v *VNode) HasClass(class string) bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	s, _ := v.Props["class"].(string)
	for _, c := range strings.Fields(s) {
		if c == class {
			return true
		}
	}
	return false
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	name   string
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Name returns the name given to Named, or "func" for Func.
func (f *FuncComponent) Name() string {
	if f.name == "" {
		return "func"
	}
	return f.name
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// Named creates a component from a render function. Hosts keep the state
// of a component only while the same name renders at its position.
func Named(name string, render func() *VNode) Component {
	return &FuncComponent{name: name, render: render}
}

// ComponentName returns the name of c: its Name method if it has one, or
// its Go type.
func ComponentName(c Component) string {
	if n, ok := c.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}

// Mount returns a component node for c. A non-empty key identifies it among
// its siblings in place of its position.
func Mount(c Component, key string) *VNode {
	return &VNode{Kind: KindComponent, Comp: c, Key: key}
}

// position identifies v among the children of its parent: its key, else
// the argument position it was created from, else its index.
func (v *VNode) position(index int) string {
	switch {
	case v.Key != "":
		return "#" + v.Key
	case v.slot != "":
		return v.slot
	default:
		return "@" + strconv.Itoa(index)
	}
}

func isEventHandler(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}
