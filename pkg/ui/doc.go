// Package ui provides accessible, reactive controls: Button (with optional
// dropdown variations), LinkButton and Collapse, plus the hooks they are
// built from (UseButton, UseDropdown, UseCollapse).
//
// Component options take vango.Readable values, so each option can be a
// constant (vango.Const) or a live signal. Button and Collapse return
// component nodes: a host renders each one under its own owner and keeps it
// while the same control renders at the same position (or with the same
// Key), so they may be rendered conditionally. LinkButton and the layout
// wrappers are plain elements.
//
//	open := vango.NewSignal(false)
//	ui.Button(ui.ButtonConfig{
//	    OnClick: func(*vango.MouseEvent) { open.Update(func(b bool) bool { return !b }) },
//	    Color:   vango.Const(ui.ColorSuccess),
//	}, "Toggle")
//	ui.Collapse(ui.CollapseConfig{Show: open}, vdom.P(vdom.Text("Details")))
package ui
