// Package live hosts a component tree for one client.
//
// A Session renders the root component, gives every element a hydration ID
// and a stable Element handle, binds NodeRefs to those handles and routes
// client events back into the tree:
//
//	s := live.New(gallery.Page, live.WithLogger(logger))
//	defer s.Close()
//
//	_, html, err := s.Render(ctx)
//	...
//	err = s.Click(ctx, "h12", vango.MouseEvent{})
//
// Component nodes are rendered under owners of their own (see vdom.Expand),
// so hook state belongs to one component instance. An instance whose
// component left the tree is disposed on that render, removing its
// click-outside listeners.
//
// Clicks first notify the click-outside listeners registered with
// vango.OnClickOutside, then bubble onclick handlers from the target to the
// root. Measure stores the scroll size the client reported for an element,
// so components reading a NodeRef see the new size on the next render.
//
// A Session implements vango.ClickOutsideRegistry, vango.Locator and
// vango.LoggerProvider.
// All its operations are serialized.
package live
