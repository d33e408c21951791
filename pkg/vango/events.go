package vango

// MouseEvent is a mouse event delivered to click handlers.
//
// Handlers receive a pointer so that StopPropagation and PreventDefault are
// visible to the host dispatching the event.
type MouseEvent struct {
	// Position relative to viewport
	ClientX int
	ClientY int

	// Button that triggered the event (0=left, 1=middle, 2=right)
	Button int

	// Modifier keys
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool

	// TargetHID is the hydration ID of the element that was clicked.
	TargetHID string

	stopped          bool
	defaultPrevented bool
}

// StopPropagation prevents the event from reaching handlers on ancestor
// elements.
func (e *MouseEvent) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (e *MouseEvent) PropagationStopped() bool {
	return e.stopped
}

// PreventDefault asks the client to skip the browser's default action.
func (e *MouseEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *MouseEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}
