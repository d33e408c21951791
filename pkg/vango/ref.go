package vango

import (
	"sync"

	"github.com/vango-dev/controls/pkg/vdom"
)

// NodeRef is a reactive reference to a rendered element.
//
// The host attaches the element after the node carrying the ref has been
// rendered, and detaches it when the node goes away. Reading the element with
// Get subscribes the current listener, so anything derived from the element
// (a measured size, a containment check) recomputes once it is attached.
type NodeRef struct {
	base signalBase

	mu sync.RWMutex
	el vdom.Element
}

// NewNodeRef creates an empty NodeRef. During render it is hook-like and
// returns the same ref on every render of the owner.
func NewNodeRef() *NodeRef {
	owner := getCurrentOwner()
	inRender := owner != nil && isInRender()

	if owner != nil {
		owner.TrackHook(HookRef)
		if inRender {
			if slot := owner.UseHookSlot(); slot != nil {
				r, ok := slot.(*NodeRef)
				if !ok {
					panic("vango: hook slot type mismatch for NodeRef")
				}
				return r
			}
		}
	}

	r := &NodeRef{base: signalBase{id: nextID()}}
	if inRender {
		owner.SetHookSlot(r)
	}
	return r
}

// Get returns the attached element, or nil, and subscribes the current
// listener.
func (r *NodeRef) Get() vdom.Element {
	r.mu.RLock()
	el := r.el
	r.mu.RUnlock()

	r.base.track()
	return el
}

// Peek returns the attached element without subscribing.
func (r *NodeRef) Peek() vdom.Element {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.el
}

// Current is an alias for Peek.
func (r *NodeRef) Current() vdom.Element {
	return r.Peek()
}

// IsSet reports whether an element is attached.
func (r *NodeRef) IsSet() bool {
	return r.Peek() != nil
}

// Attach binds el to the ref. Subscribers are notified only when the bound
// element actually changes.
func (r *NodeRef) Attach(el vdom.Element) {
	r.mu.Lock()
	changed := r.el != el
	r.el = el
	r.mu.Unlock()

	if changed {
		r.base.notifySubscribers()
	}
}

// Detach clears the ref.
func (r *NodeRef) Detach() {
	r.Attach(nil)
}

// ID returns the unique identifier for this ref.
func (r *NodeRef) ID() uint64 {
	return r.base.id
}

var (
	_ vdom.ElementRef        = (*NodeRef)(nil)
	_ Readable[vdom.Element] = (*NodeRef)(nil)
)
