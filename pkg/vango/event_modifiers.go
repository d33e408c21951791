package vango

// ModifiedHandler wraps a handler with modifier flags.
// The host recognizes the wrapper and applies the flags when dispatching.
//
//	OnClick(vango.StopPropagation(func() {
//	    // the click does not reach ancestors
//	}))
type ModifiedHandler struct {
	// Handler is the wrapped handler, func() or func(*MouseEvent).
	Handler any

	PreventDefault  bool // Prevent default browser behavior
	StopPropagation bool // Stop event bubbling
	Self            bool // Only fire if target is the exact element
}

// Unwrap returns the innermost handler.
func (m ModifiedHandler) Unwrap() any {
	if inner, ok := m.Handler.(ModifiedHandler); ok {
		return inner.Unwrap()
	}
	return m.Handler
}

func modify(handler any, set func(*ModifiedHandler)) ModifiedHandler {
	mh, ok := handler.(ModifiedHandler)
	if !ok {
		mh = ModifiedHandler{Handler: handler}
	}
	set(&mh)
	return mh
}

// PreventDefault wraps a handler to prevent the default browser behavior.
func PreventDefault(handler any) ModifiedHandler {
	return modify(handler, func(m *ModifiedHandler) { m.PreventDefault = true })
}

// StopPropagation wraps a handler to stop event bubbling.
func StopPropagation(handler any) ModifiedHandler {
	return modify(handler, func(m *ModifiedHandler) { m.StopPropagation = true })
}

// Self wraps a handler to only fire if the event target is the exact element.
func Self(handler any) ModifiedHandler {
	return modify(handler, func(m *ModifiedHandler) { m.Self = true })
}
