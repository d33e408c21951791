package ui

import "github.com/vango-dev/controls/pkg/vdom"

// Icon renders a named icon placeholder. Icon assets are supplied by the
// page's stylesheet, keyed on data-icon.
func Icon(name string) *vdom.VNode {
	return vdom.I(
		vdom.Class("vango-icon"),
		vdom.Data("icon", name),
		vdom.AriaHidden(true),
	)
}
