// Package vdom provides the virtual DOM used by the controls.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Button(Class("vango-btn"), Role("button"),
//	    Span(Text("Save")),
//	    OnClick(handler),
//	)
//
// A nil attribute value omits the attribute, which is how reactive attribute
// maps remove an attribute (for example tabindex on a disabled control).
//
// # Element references
//
// NodeRef binds an ElementRef to an element. After rendering, the host
// attaches its Element handle, which exposes scroll sizes and containment.
//
// # Components
//
// Func and Named wrap render functions as components; Mount places one in a
// tree under an optional key. Expand hands every component node to a
// Mounter along with its path, built from keys and the argument positions
// nodes were created from, so a conditional sibling (a nil argument) does
// not move the components after it.
//
// # Hydration
//
// AssignHIDs and AssignAllHIDs give elements hydration IDs that link the
// server tree to client DOM nodes.
package vdom
