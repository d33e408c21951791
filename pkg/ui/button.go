package ui

import (
	"github.com/vango-dev/controls/pkg/aria"
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// ButtonClass is the class every button carries.
const ButtonClass = "vango-btn"

// ButtonConfig configures a Button. OnClick is required; every other field
// is optional and nil readables take their documented default.
type ButtonConfig struct {
	// OnClick runs when the enabled button is clicked.
	OnClick func(*vango.MouseEvent)

	Variant  vango.Readable[Variant]
	Color    vango.Readable[Color]
	Size     vango.Readable[Size]
	Disabled vango.Readable[bool]
	Active   vango.Readable[bool]

	// Variations renders the dropdown panel content. A button that gains or
	// loses its variations starts over with a closed dropdown.
	Variations func() *vdom.VNode

	// Key identifies the button among its siblings, so that its dropdown
	// state follows it when siblings come and go. It defaults to ID.
	Key string

	ID    string
	Class vango.Readable[string]
	Style string

	AriaHasPopup vango.Readable[aria.HasPopup]
	AriaExpanded vango.Readable[aria.Expanded]
}

// Button renders an accessible button.
//
// The click handler runs only while the button is enabled, and the click
// does not propagate past the button. With Variations set, the button also
// renders a dropdown trigger showing a caret and the variations panel.
//
// The button is a component: hosts render it under its own owner, so each
// button keeps its own dropdown state.
func Button(cfg ButtonConfig, children ...any) *vdom.VNode {
	name := "ui.Button"
	if cfg.Variations != nil {
		name = "ui.Button+variations"
	}
	return vdom.Mount(vdom.Named(name, func() *vdom.VNode {
		return button(cfg, children)
	}), keyOr(cfg.Key, cfg.ID))
}

func button(cfg ButtonConfig, children []any) *vdom.VNode {
	disabled := vango.OrZero(cfg.Disabled)
	active := vango.OrZero(cfg.Active)
	userClass := vango.OrZero(cfg.Class)

	props := UseButton(ButtonState{
		Disabled:     disabled,
		AriaHasPopup: cfg.AriaHasPopup,
		AriaExpanded: cfg.AriaExpanded,
	})

	var dropdown *Dropdown
	if cfg.Variations != nil {
		dropdown = UseDropdown(disabled)
	}

	onClick := func(e *vango.MouseEvent) {
		if disabled.Peek() {
			return
		}
		e.StopPropagation()
		if cfg.OnClick != nil {
			cfg.OnClick(e)
		}
	}

	args := []any{
		props.Attrs(),
		vdom.Class(
			userClass.Get(),
			ButtonClass,
			vdom.ClassIf(dropdown != nil, "has-variations"),
			vdom.ClassIf(active.Get(), "active"),
		),
		vdom.Data("variant", vango.OrZero(cfg.Variant).Get().String()),
		vdom.Data("color", vango.OrZero(cfg.Color).Get().String()),
		vdom.Data("size", vango.OrZero(cfg.Size).Get().String()),
		vdom.OnClick(onClick),
	}
	if cfg.ID != "" {
		args = append(args, vdom.ID(cfg.ID))
	}
	if cfg.Style != "" {
		args = append(args, vdom.StyleAttr(cfg.Style))
	}

	args = append(args, vdom.Div(append([]any{vdom.Class("name")}, children...)...))
	if dropdown != nil {
		args = append(args, dropdownParts(dropdown, cfg.Variations)...)
	}

	return vdom.Button(args...)
}

func dropdownParts(d *Dropdown, variations func() *vdom.VNode) []any {
	return []any{
		vdom.Div(
			vdom.Class("dropdown-trigger"),
			vdom.NodeRef(d.Trigger),
			vdom.OnClick(d.Toggle),
			Icon(d.Caret()),
		),
		vdom.Div(
			vdom.Class("dropdown", vdom.ClassIf(d.PanelActive(), "active")),
			variations(),
		),
	}
}

func keyOr(key, id string) string {
	if key != "" {
		return key
	}
	return id
}

// ButtonGroup lays out buttons as one joined group.
func ButtonGroup(children ...any) *vdom.VNode {
	return vdom.El("vango-btn-group", children...)
}

// ButtonWrapper lays out buttons side by side with spacing.
func ButtonWrapper(children ...any) *vdom.VNode {
	return vdom.El("vango-btn-wrapper", children...)
}
