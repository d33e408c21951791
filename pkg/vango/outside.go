package vango

// ClickOutsideRegistry is implemented by hosts that can report clicks landing
// outside a referenced element.
type ClickOutsideRegistry interface {
	// RegisterClickOutside arranges for fn to run whenever a click lands
	// outside the element bound to ref. The returned function removes the
	// registration.
	RegisterClickOutside(ref *NodeRef, fn func()) (unregister func())
}

// OnClickOutside runs fn whenever a click lands outside the element bound to
// ref, for the lifetime of the current owner.
//
// It is hook-like: the registration is made on the first render only, and is
// removed when the owner is disposed. The latest fn is used on every click.
// Without a host implementing ClickOutsideRegistry it does nothing.
func OnClickOutside(ref *NodeRef, fn func()) {
	owner := getCurrentOwner()
	inRender := owner != nil && isInRender()

	if owner != nil {
		owner.TrackHook(HookClickOutside)
		if inRender {
			if slot := owner.UseHookSlot(); slot != nil {
				h, ok := slot.(*outsideHandler)
				if !ok {
					panic("vango: hook slot type mismatch for OnClickOutside")
				}
				h.fn = fn
				return
			}
		}
	}

	h := &outsideHandler{fn: fn}
	if inRender {
		owner.SetHookSlot(h)
	}

	registry, ok := getCurrentCtx().(ClickOutsideRegistry)
	if !ok {
		return
	}
	unregister := registry.RegisterClickOutside(ref, func() { h.fn() })
	if owner != nil {
		owner.OnCleanup(unregister)
	}
}

type outsideHandler struct {
	fn func()
}
