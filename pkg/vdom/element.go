package vdom

// Element is the host-side handle of a rendered element.
//
// Hosts implement it with whatever layout information they have. Sizes are
// in CSS pixels and are zero until the host has measured the element.
type Element interface {
	// ScrollWidth is the full width of the element's content.
	ScrollWidth() int
	// ScrollHeight is the full height of the element's content.
	ScrollHeight() int
	// Contains reports whether other is this element or one of its
	// descendants.
	Contains(other Element) bool
}

// ElementRef receives the element rendered for the node it is bound to.
type ElementRef interface {
	Attach(el Element)
	Detach()
}

// refProp is the internal prop holding a node's ElementRef.
const refProp = "_ref"

// NodeRef binds ref to the element being built. The host attaches the
// rendered element to ref after each render.
func NodeRef(ref ElementRef) Attr {
	if ref == nil {
		return Attr{}
	}
	return attr(refProp, ref)
}
