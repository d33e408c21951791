// Package vango provides the reactive core used by the controls.
//
// Dependencies are tracked automatically at runtime: reading a signal while
// a listener is installed (a component render, a memo computation or an
// effect) subscribes that listener to the signal's changes.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	open := NewSignal(false)
//	value := open.Get()  // Read (subscribes current listener)
//	open.Set(true)       // Write (notifies subscribers)
//
// Memo[T] caches a derived computation; Derived[T] recomputes on every read.
// Both, like Signal and Static, satisfy Readable[T], which is what component
// options accept:
//
//	label := Derive(func() string {
//	    if open.Get() {
//	        return "caret-up"
//	    }
//	    return "caret-down"
//	})
//
// Effect runs side effects when dependencies change. NodeRef is a reactive
// handle on a rendered element; OnClickOutside reports clicks that land
// outside one.
//
// # Owners and hooks
//
// Every component renders under an Owner. Constructors such as NewSignal,
// NewNodeRef and OnClickOutside are hook-like when called during a render:
// they return the same instance on every render of the same owner, so they
// must be called unconditionally and in a stable order within one owner.
// Hosts give each component its own owner, a child of the owner it was
// rendered under, and dispose it when the component leaves the tree.
//
// SetContext stores a value on the current owner that GetContext finds from
// any descendant owner. Logger, CurrentPath and UseCtx read the host.
//
// # Thread Safety
//
// The tracking context is per-goroutine. Hosts serialize each session's
// events and renders on one goroutine at a time and install the owner,
// listener and host context with WithOwner, WithListener and WithCtx.
package vango
