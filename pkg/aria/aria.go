// Package aria defines the values of the ARIA state attributes used by the
// controls.
package aria

// HasPopup is the value of aria-haspopup. The zero value means the control
// opens no popup.
type HasPopup uint8

const (
	HasPopupFalse HasPopup = iota
	HasPopupTrue
	HasPopupMenu
	HasPopupListbox
	HasPopupTree
	HasPopupGrid
	HasPopupDialog
)

// String returns the attribute value.
func (h HasPopup) String() string {
	switch h {
	case HasPopupTrue:
		return "true"
	case HasPopupMenu:
		return "menu"
	case HasPopupListbox:
		return "listbox"
	case HasPopupTree:
		return "tree"
	case HasPopupGrid:
		return "grid"
	case HasPopupDialog:
		return "dialog"
	default:
		return "false"
	}
}

// Expanded is the value of aria-expanded. The zero value means collapsed.
type Expanded uint8

const (
	ExpandedFalse Expanded = iota
	ExpandedTrue
	ExpandedUndefined
)

// ExpandedFrom maps a boolean open state to Expanded.
func ExpandedFrom(open bool) Expanded {
	if open {
		return ExpandedTrue
	}
	return ExpandedFalse
}

// String returns the attribute value.
func (e Expanded) String() string {
	switch e {
	case ExpandedTrue:
		return "true"
	case ExpandedUndefined:
		return "undefined"
	default:
		return "false"
	}
}
