package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/controls/pkg/aria"
	"github.com/vango-dev/controls/pkg/ui"
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
	"github.com/vango-dev/controls/pkg/vtest"
)

// mountButton hosts cfg inside a page whose root counts clicks that
// propagate past the button.
func mountButton(t *testing.T, cfg ui.ButtonConfig) (*vtest.TestSession, *int) {
	t.Helper()
	bubbled := 0
	s := vtest.Mount(t, func() *vdom.VNode {
		return vdom.Div(
			vdom.Class("page"),
			vdom.OnClick(func() { bubbled++ }),
			ui.Button(cfg, "Save"),
			vdom.Div(vdom.Class("elsewhere")),
		)
	})
	return s, &bubbled
}

func TestButtonDisabledScenario(t *testing.T) {
	clicks := 0
	s, _ := mountButton(t, ui.ButtonConfig{
		OnClick:  func(*vango.MouseEvent) { clicks++ },
		Disabled: vango.Const(true),
	})

	btn := s.Find(ui.ButtonClass)
	vtest.ExpectNoAttr(t, btn, "tabindex")
	vtest.ExpectAttr(t, btn, "disabled", "")
	vtest.ExpectAttr(t, btn, "aria-disabled", "true")

	s.ClickClass(ui.ButtonClass)
	assert.Equal(t, 0, clicks)
}

func TestButtonEnabledScenario(t *testing.T) {
	clicks := 0
	s, bubbled := mountButton(t, ui.ButtonConfig{
		OnClick: func(*vango.MouseEvent) { clicks++ },
	})

	btn := s.Find(ui.ButtonClass)
	vtest.ExpectAttr(t, btn, "tabindex", "0")
	vtest.ExpectAttr(t, btn, "role", "button")
	vtest.ExpectNoAttr(t, btn, "disabled")

	s.ClickClass(ui.ButtonClass)
	assert.Equal(t, 1, clicks)
	assert.Equal(t, 0, *bubbled, "click does not propagate")

	s.ClickClass("name")
	assert.Equal(t, 2, clicks, "clicks on the label reach the button")
	assert.Equal(t, 0, *bubbled)
}

func TestButtonDisabledIsReactive(t *testing.T) {
	disabled := vango.NewSignal(false)
	clicks := 0
	s, _ := mountButton(t, ui.ButtonConfig{
		OnClick:  func(*vango.MouseEvent) { clicks++ },
		Disabled: disabled,
	})

	disabled.Set(true)
	btn := s.Find(ui.ButtonClass)
	vtest.ExpectNoAttr(t, btn, "tabindex")
	vtest.ExpectAttr(t, btn, "aria-disabled", "true")
	s.ClickClass(ui.ButtonClass)

	disabled.Set(false)
	btn = s.Find(ui.ButtonClass)
	vtest.ExpectAttr(t, btn, "tabindex", "0")
	vtest.ExpectAttr(t, btn, "aria-disabled", "false")
	s.ClickClass(ui.ButtonClass)

	assert.Equal(t, 1, clicks)
}

// buttonElement mounts cfg alone and returns the rendered <button>.
func buttonElement(t *testing.T, cfg ui.ButtonConfig, children ...any) *vdom.VNode {
	t.Helper()
	s := vtest.Mount(t, func() *vdom.VNode { return ui.Button(cfg, children...) })
	return s.Find(ui.ButtonClass)
}

func TestButtonStyling(t *testing.T) {
	node := buttonElement(t, ui.ButtonConfig{
		OnClick: func(*vango.MouseEvent) {},
		Variant: vango.Const(ui.VariantOutlined),
		Color:   vango.Const(ui.ColorDanger),
		Size:    vango.Const(ui.SizeBig),
		Active:  vango.Const(true),
		ID:      "delete",
		Class:   vango.Const("wide"),
		Style:   "margin: 0",

		AriaHasPopup: vango.Const(aria.HasPopupDialog),
		AriaExpanded: vango.Const(aria.ExpandedTrue),
	}, "Delete")

	assert.Equal(t, "button", node.Tag)
	vtest.ExpectAttr(t, node, "class", "wide vango-btn active")
	vtest.ExpectAttr(t, node, "data-variant", "outlined")
	vtest.ExpectAttr(t, node, "data-color", "danger")
	vtest.ExpectAttr(t, node, "data-size", "big")
	vtest.ExpectAttr(t, node, "id", "delete")
	vtest.ExpectAttr(t, node, "style", "margin: 0")
	vtest.ExpectAttr(t, node, "aria-haspopup", "dialog")
	vtest.ExpectAttr(t, node, "aria-expanded", "true")
	vtest.ExpectContains(t, node, `<div class="name">Delete</div>`)
	assert.Nil(t, vdom.FindByClass(node, "dropdown-trigger"), "no dropdown without variations")
}

func TestButtonDefaults(t *testing.T) {
	node := buttonElement(t, ui.ButtonConfig{OnClick: func(*vango.MouseEvent) {}})

	vtest.ExpectAttr(t, node, "class", "vango-btn")
	vtest.ExpectAttr(t, node, "data-variant", "filled")
	vtest.ExpectAttr(t, node, "data-color", "primary")
	vtest.ExpectAttr(t, node, "data-size", "normal")
	vtest.ExpectAttr(t, node, "aria-haspopup", "false")
	vtest.ExpectAttr(t, node, "aria-expanded", "false")
}

func variations() *vdom.VNode {
	return vdom.Ul(vdom.Class("variations"), vdom.Li("Save as"), vdom.Li("Save all"))
}

func caret(t *testing.T, s *vtest.TestSession) string {
	t.Helper()
	v, _ := vtest.Attr(vdom.FindByClass(s.Find("dropdown-trigger"), "vango-icon"), "data-icon")
	return v
}

func TestButtonVariations(t *testing.T) {
	clicks := 0
	s, bubbled := mountButton(t, ui.ButtonConfig{
		OnClick:    func(*vango.MouseEvent) { clicks++ },
		Variations: variations,
	})

	assert.True(t, s.Find(ui.ButtonClass).HasClass("has-variations"))
	assert.Equal(t, ui.CaretDown, caret(t, s))
	assert.False(t, s.Find("dropdown").HasClass("active"))

	s.ClickClass("dropdown-trigger")
	assert.Equal(t, ui.CaretUp, caret(t, s))
	assert.True(t, s.Find("dropdown").HasClass("active"))
	assert.Equal(t, 0, clicks, "trigger click does not reach the button handler")
	assert.Equal(t, 0, *bubbled)

	s.ClickClass("dropdown-trigger")
	assert.Equal(t, ui.CaretDown, caret(t, s))
	assert.False(t, s.Find("dropdown").HasClass("active"))
}

func TestButtonVariationsCloseOnOutsideClick(t *testing.T) {
	disabled := vango.NewSignal(false)
	s, bubbled := mountButton(t, ui.ButtonConfig{
		OnClick:    func(*vango.MouseEvent) {},
		Disabled:   disabled,
		Variations: variations,
	})

	s.ClickClass("dropdown-trigger")
	require.True(t, s.Find("dropdown").HasClass("active"))

	s.ClickClass("elsewhere")
	assert.Equal(t, ui.CaretDown, caret(t, s))
	assert.False(t, s.Find("dropdown").HasClass("active"))
	assert.Equal(t, 1, *bubbled)

	s.ClickClass("elsewhere")
	assert.Equal(t, ui.CaretDown, caret(t, s), "closed stays closed")

	s.ClickClass("dropdown-trigger")
	disabled.Set(true)
	s.ClickClass("elsewhere")
	assert.Equal(t, ui.CaretDown, caret(t, s), "outside click closes while disabled")
}

func TestButtonVariationsDisabled(t *testing.T) {
	disabled := vango.NewSignal(true)
	s, _ := mountButton(t, ui.ButtonConfig{
		OnClick:    func(*vango.MouseEvent) {},
		Disabled:   disabled,
		Variations: variations,
	})

	s.ClickClass("dropdown-trigger")
	assert.Equal(t, ui.CaretDown, caret(t, s), "disabled trigger is ignored")

	disabled.Set(false)
	s.ClickClass("dropdown-trigger")
	require.Equal(t, ui.CaretUp, caret(t, s))

	disabled.Set(true)
	assert.False(t, s.Find("dropdown").HasClass("active"), "disabling hides the panel")
	assert.Equal(t, ui.CaretUp, caret(t, s), "state is kept")

	disabled.Set(false)
	assert.True(t, s.Find("dropdown").HasClass("active"))
}

func TestButtonInstancesDoNotShareState(t *testing.T) {
	s := vtest.Mount(t, func() *vdom.VNode {
		return ui.ButtonWrapper(
			ui.Button(ui.ButtonConfig{OnClick: func(*vango.MouseEvent) {}, ID: "a", Variations: variations}),
			ui.Button(ui.ButtonConfig{OnClick: func(*vango.MouseEvent) {}, ID: "b", Variations: variations}),
		)
	})

	triggers := vdom.FindAll(s.Rerender(), func(n *vdom.VNode) bool { return n.HasClass("dropdown-trigger") })
	require.Len(t, triggers, 2)
	s.ClickHID(triggers[0].HID)

	panels := vdom.FindAll(s.Rerender(), func(n *vdom.VNode) bool { return n.HasClass("dropdown") })
	require.Len(t, panels, 2)
	assert.True(t, panels[0].HasClass("active"))
	assert.False(t, panels[1].HasClass("active"))
}

func TestButtonStateFollowsButtonWhenSiblingAppears(t *testing.T) {
	showA := vango.NewBoolSignal(false)
	s := vtest.Mount(t, func() *vdom.VNode {
		return ui.ButtonWrapper(
			vdom.If(showA.Get(), ui.Button(ui.ButtonConfig{
				OnClick: func(*vango.MouseEvent) {}, Class: vango.Const("a"), Variations: variations,
			})),
			ui.Button(ui.ButtonConfig{
				OnClick: func(*vango.MouseEvent) {}, Class: vango.Const("b"), Variations: variations,
			}),
		)
	})
	panel := func(class string) *vdom.VNode {
		return vdom.FindByClass(s.Find(class), "dropdown")
	}

	s.ClickHID(vdom.FindByClass(s.Find("b"), "dropdown-trigger").HID)
	require.True(t, panel("b").HasClass("active"))
	require.Equal(t, 1, s.ClickOutsideListeners())

	showA.SetTrue()
	assert.False(t, panel("a").HasClass("active"), "a new button starts closed")
	assert.True(t, panel("b").HasClass("active"), "b keeps its open dropdown")
	assert.Equal(t, 2, s.ClickOutsideListeners())

	showA.SetFalse()
	assert.True(t, panel("b").HasClass("active"))
	assert.Equal(t, 1, s.ClickOutsideListeners(), "a removed button drops its listener")
	assert.Equal(t, 1, s.Components())
}

func TestButtonKeyFollowsReorder(t *testing.T) {
	flipped := vango.NewBoolSignal(false)
	s := vtest.Mount(t, func() *vdom.VNode {
		a := ui.Button(ui.ButtonConfig{OnClick: func(*vango.MouseEvent) {}, ID: "a", Variations: variations})
		b := ui.Button(ui.ButtonConfig{OnClick: func(*vango.MouseEvent) {}, ID: "b", Variations: variations})
		if flipped.Get() {
			return ui.ButtonWrapper(b, a)
		}
		return ui.ButtonWrapper(a, b)
	})
	panel := func(id string) *vdom.VNode {
		return vdom.Find(s.Rerender(), func(n *vdom.VNode) bool {
			v, _ := vtest.Attr(n, "id")
			return v == id
		})
	}

	s.ClickHID(vdom.FindByClass(panel("a"), "dropdown-trigger").HID)
	flipped.SetTrue()
	assert.True(t, vdom.FindByClass(panel("a"), "dropdown").HasClass("active"))
	assert.False(t, vdom.FindByClass(panel("b"), "dropdown").HasClass("active"))
}

func TestButtonAfterRemovedCollapse(t *testing.T) {
	showCollapse := vango.NewBoolSignal(true)
	s := vtest.Mount(t, func() *vdom.VNode {
		return vdom.Div(
			vdom.If(showCollapse.Get(), ui.Collapse(ui.CollapseConfig{Show: vango.Const(true)}, vdom.P("body"))),
			ui.Button(ui.ButtonConfig{OnClick: func(*vango.MouseEvent) {}, Variations: variations}),
		)
	})
	s.ClickClass("dropdown-trigger")
	require.Equal(t, 2, s.Components())

	showCollapse.SetFalse()
	assert.True(t, s.Find("dropdown").HasClass("active"))
	assert.Nil(t, vdom.FindByClass(s.Rerender(), "vango-collapse"))
	assert.Equal(t, 1, s.Components())
}

func TestButtonGainingVariationsStartsClosed(t *testing.T) {
	withVariations := vango.NewBoolSignal(false)
	s := vtest.Mount(t, func() *vdom.VNode {
		cfg := ui.ButtonConfig{OnClick: func(*vango.MouseEvent) {}}
		if withVariations.Get() {
			cfg.Variations = variations
		}
		return ui.Button(cfg, "Save")
	})
	assert.Nil(t, vdom.FindByClass(s.Rerender(), "dropdown"))

	withVariations.SetTrue()
	assert.Equal(t, ui.CaretDown, caret(t, s))
	assert.Equal(t, 1, s.ClickOutsideListeners())

	withVariations.SetFalse()
	assert.Equal(t, 0, s.ClickOutsideListeners())
}

func TestButtonGroupAndWrapper(t *testing.T) {
	vtest.ExpectContains(t, ui.ButtonGroup(vdom.Span("x")), "<vango-btn-group><span>x</span></vango-btn-group>")
	vtest.ExpectContains(t, ui.ButtonWrapper(), "<vango-btn-wrapper></vango-btn-wrapper>")
}
