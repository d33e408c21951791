package live

import "github.com/vango-dev/controls/pkg/vdom"

// Element is the session's handle on a rendered element.
//
// Handles are keyed by hydration ID and survive re-renders as long as the
// element keeps its position in the tree, so NodeRefs stay bound to the same
// handle. Scroll sizes are reported by the client through Session.Measure.
type Element struct {
	hid    string
	tag    string
	parent *Element
	node   *vdom.VNode

	scrollWidth  int
	scrollHeight int
}

// HID returns the element's hydration ID.
func (e *Element) HID() string { return e.hid }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent returns the enclosing element, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Node returns the VNode the element was last rendered from.
func (e *Element) Node() *vdom.VNode { return e.node }

// ScrollWidth implements vdom.Element.
func (e *Element) ScrollWidth() int { return e.scrollWidth }

// ScrollHeight implements vdom.Element.
func (e *Element) ScrollHeight() int { return e.scrollHeight }

// Contains implements vdom.Element.
func (e *Element) Contains(other vdom.Element) bool {
	o, ok := other.(*Element)
	if !ok {
		return false
	}
	for ; o != nil; o = o.parent {
		if o == e {
			return true
		}
	}
	return false
}

var _ vdom.Element = (*Element)(nil)
