package ui

import "github.com/vango-dev/controls/pkg/vango"

// DropdownState is the state of a dropdown variation panel.
type DropdownState uint8

const (
	DropdownClosed DropdownState = iota
	DropdownOpen
)

func (s DropdownState) String() string {
	if s == DropdownOpen {
		return "open"
	}
	return "closed"
}

// Caret icon names.
const (
	CaretUp   = "caret-up"
	CaretDown = "caret-down"
)

// Dropdown controls the variations panel of a button.
//
// A button without variations has no Dropdown at all (a nil *Dropdown).
// Trigger clicks toggle the panel unless the button is disabled; clicks
// outside the trigger close it unconditionally. Disabling the button hides
// an open panel without changing its state, so re-enabling shows it again.
type Dropdown struct {
	open     *vango.BoolSignal
	disabled vango.Readable[bool]

	// Trigger is bound to the element whose clicks toggle the panel.
	Trigger *vango.NodeRef
}

// UseDropdown creates the dropdown controller for the current component and
// registers its click-outside listener for the component's lifetime.
// It is hook-like and must be called on every render of the component.
func UseDropdown(disabled vango.Readable[bool]) *Dropdown {
	d := &Dropdown{
		open:     vango.NewBoolSignal(false),
		disabled: vango.OrZero(disabled),
		Trigger:  vango.NewNodeRef(),
	}
	vango.OnClickOutside(d.Trigger, d.CloseOutside)
	return d
}

// Toggle handles a click on the trigger. It is ignored while the button is
// disabled; otherwise it flips the state and stops e from propagating.
func (d *Dropdown) Toggle(e *vango.MouseEvent) {
	if d.disabled.Peek() {
		return
	}
	d.open.Toggle()
	if e != nil {
		e.StopPropagation()
	}
}

// CloseOutside closes the panel. It ignores the disabled flag.
func (d *Dropdown) CloseOutside() {
	d.open.SetFalse()
}

// State returns the current state, subscribing the current listener.
func (d *Dropdown) State() DropdownState {
	if d.open.Get() {
		return DropdownOpen
	}
	return DropdownClosed
}

// IsOpen reports whether the panel is open, without subscribing.
func (d *Dropdown) IsOpen() bool {
	return d.open.Peek()
}

// PanelActive reports whether the panel is shown: open and not disabled.
func (d *Dropdown) PanelActive() bool {
	return d.open.Get() && !d.disabled.Get()
}

// Caret returns the icon name reflecting the state.
func (d *Dropdown) Caret() string {
	if d.open.Get() {
		return CaretUp
	}
	return CaretDown
}
