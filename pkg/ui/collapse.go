package ui

import (
	"fmt"

	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// Axis selects the dimension a Collapse animates. The zero value is AxisY.
type Axis uint8

const (
	AxisY Axis = iota
	AxisX
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// CollapseStyle returns the style for a collapse along axis: the minimum size
// is pinned to 0 and the size is measured when show is true and 0 otherwise.
// The other axis is left unconstrained.
func CollapseStyle(show bool, measured int, axis Axis) string {
	target := 0
	if show {
		target = measured
	}
	if axis == AxisX {
		return fmt.Sprintf("min-width: 0px; width: %dpx", target)
	}
	return fmt.Sprintf("min-height: 0px; height: %dpx", target)
}

// CollapseState is the measured-dimension controller of a Collapse.
type CollapseState struct {
	// Content is bound to the element whose scroll size is measured.
	Content *vango.NodeRef

	// Style is recomputed on every read from show and a fresh measurement.
	Style *vango.Derived[string]

	Show vango.Readable[bool]
	Axis Axis
}

// UseCollapse creates the controller for a collapse along axis. Until the
// content element is attached the measured size is 0. It is hook-like.
func UseCollapse(show vango.Readable[bool], axis Axis) *CollapseState {
	show = vango.OrZero(show)
	content := vango.NewNodeRef()

	c := &CollapseState{
		Content: content,
		Show:    show,
		Axis:    axis,
	}
	c.Style = vango.Derive(func() string {
		return CollapseStyle(show.Get(), c.measure(), axis)
	})
	return c
}

// Measured returns the current scroll size along the axis, without
// subscribing.
func (c *CollapseState) Measured() int {
	var d int
	vango.Untracked(func() { d = c.measure() })
	return d
}

func (c *CollapseState) measure() int {
	el := c.Content.Get()
	if el == nil {
		return 0
	}
	var d int
	if c.Axis == AxisX {
		d = el.ScrollWidth()
	} else {
		d = el.ScrollHeight()
	}
	vango.Logger().Debug("collapse measured", "axis", c.Axis.String(), "px", d)
	return d
}

// CollapseConfig configures a Collapse. Show is required. Key identifies
// the collapse among its siblings and defaults to ID.
type CollapseConfig struct {
	Show  vango.Readable[bool]
	Axis  Axis
	ID    string
	Class string
	Key   string
}

// Collapse renders children inside a wrapper whose size along the axis
// follows Show, so a CSS transition on the wrapper animates open and close.
// Like Button it is a component with its own owner.
func Collapse(cfg CollapseConfig, children ...any) *vdom.VNode {
	return vdom.Mount(vdom.Named("ui.Collapse", func() *vdom.VNode {
		return collapse(cfg, children)
	}), keyOr(cfg.Key, cfg.ID))
}

func collapse(cfg CollapseConfig, children []any) *vdom.VNode {
	c := UseCollapse(cfg.Show, cfg.Axis)
	show := c.Show.Get()

	wrapper := []any{
		vdom.Class(
			cfg.Class,
			"vango-collapse",
			vdom.ClassIf(cfg.Axis == AxisX, "width"),
			vdom.ClassIf(cfg.Axis == AxisY, "height"),
		),
		vdom.StyleAttr(c.Style.Get()),
	}
	if cfg.ID != "" {
		wrapper = append(wrapper, vdom.ID(cfg.ID))
	}

	content := append([]any{
		vdom.Class("content", vdom.ClassIf(show, "show")),
		vdom.NodeRef(c.Content),
	}, children...)

	return vdom.Div(append(wrapper, vdom.Div(content...))...)
}
