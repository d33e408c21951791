package gallery

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/vango-dev/controls/pkg/aria"
	"github.com/vango-dev/controls/pkg/live"
	"github.com/vango-dev/controls/pkg/render"
	"github.com/vango-dev/controls/pkg/ui"
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// CSS is the stylesheet of the gallery and the controls it shows.
//
//go:embed gallery.css
var CSS string

// RootID is the id of the element live updates replace.
const RootID = "vango-root"

// reporter records the name of a clicked control.
type reporter func(what string) func(*vango.MouseEvent)

// reporterKey scopes the reporter to the page, so controls rendered inside
// other components can report clicks too.
type reporterKey struct{}

func pageReporter() reporter {
	r, _ := vango.GetContext(reporterKey{}).(reporter)
	if r == nil {
		return func(string) func(*vango.MouseEvent) { return func(*vango.MouseEvent) {} }
	}
	return r
}

// Page returns the gallery root component. Every control in the library is
// shown at least once; clicks are reported in a status line and logged.
func Page(title string) func() *vdom.VNode {
	return func() *vdom.VNode {
		last := vango.NewSignal("")
		clicks := vango.NewSignal(0)
		disabled := vango.NewBoolSignal(false)
		showY := vango.NewBoolSignal(false)
		showX := vango.NewBoolSignal(false)

		status := vango.NewMemo(func() string {
			switch n := clicks.Get(); n {
			case 0:
				return "no clicks yet"
			case 1:
				return "1 click"
			default:
				return fmt.Sprintf("%d clicks", n)
			}
		})
		vango.CreateEffect(func() vango.Cleanup {
			if what := last.Get(); what != "" {
				vango.Logger().Info("control clicked", "control", what, "clicks", clicks.Peek())
			}
			return nil
		})

		var report reporter = func(what string) func(*vango.MouseEvent) {
			return func(*vango.MouseEvent) {
				vango.Batch(func() {
					last.Set(what)
					clicks.Update(func(n int) int { return n + 1 })
				})
			}
		}
		vango.SetContext(reporterKey{}, report)

		lastLabel := last.Get()
		if lastLabel == "" {
			lastLabel = "nothing yet"
		}

		return vdom.Main(
			vdom.Class("gallery"),
			vdom.Header(
				vdom.H1(title),
				navigation(),
			),
			vdom.P(vdom.Class("status"), "Last clicked: ", vdom.Strong(lastLabel), " (", status.Get(), ")"),
			section("Variants and colors", variantGrid(report)),
			section("Sizes", sizes(report)),
			section("Disabled", disabledDemo(disabled, report)),
			section("Active", ui.ButtonWrapper(
				ui.Button(ui.ButtonConfig{OnClick: report("active"), Active: vango.Const(true)}, "Active"),
				ui.Button(ui.ButtonConfig{OnClick: report("inactive")}, "Inactive"),
			)),
			section("Collapse", collapses(showY, showX)),
		)
	}
}

func section(title string, body ...any) *vdom.VNode {
	return vdom.Section(append([]any{vdom.Class("demo"), vdom.H2(title)}, body...)...)
}

func navigation() *vdom.VNode {
	return vdom.Nav(
		ui.ButtonWrapper(
			ui.LinkButton(ui.LinkButtonConfig{Href: "/", Exact: true, Variant: vango.Const(ui.VariantFlat)}, "Gallery"),
			ui.LinkButton(ui.LinkButtonConfig{Href: "/docs", Variant: vango.Const(ui.VariantFlat)}, "Docs"),
			ui.LinkButton(ui.LinkButtonConfig{
				Href:    "/docs/collapse",
				Variant: vango.Const(ui.VariantFlat),
				Replace: true,
				State:   map[string]string{"from": "gallery"},
			}, "Collapse docs"),
		),
	)
}

func variantGrid(report reporter) *vdom.VNode {
	rows := make([]any, 0, len(ui.Variants))
	for _, v := range ui.Variants {
		buttons := make([]any, 0, len(ui.Colors))
		for _, c := range ui.Colors {
			label := fmt.Sprintf("%s %s", v, c)
			buttons = append(buttons, ui.Button(ui.ButtonConfig{
				OnClick: report(label),
				Variant: vango.Const(v),
				Color:   vango.Const(c),
			}, c.String()))
		}
		rows = append(rows, vdom.Div(vdom.Class("row"), vdom.Small(v.String()), ui.ButtonWrapper(buttons...)))
	}
	return vdom.Div(rows...)
}

func sizes(report reporter) *vdom.VNode {
	buttons := make([]any, 0, len(ui.Sizes))
	for _, s := range ui.Sizes {
		buttons = append(buttons, ui.Button(ui.ButtonConfig{
			OnClick: report(s.String()),
			Size:    vango.Const(s),
			Variant: vango.Const(ui.VariantOutlined),
		}, s.String()))
	}
	return ui.ButtonGroup(buttons...)
}

// variations renders inside the button component. A chosen variation
// does not also count as a click on the button.
func variations() *vdom.VNode {
	report := pageReporter()
	item := func(class, label string) *vdom.VNode {
		return vdom.Li(vdom.Class(class), vdom.OnClick(vango.StopPropagation(report(label))), label)
	}
	return vdom.Ul(
		vdom.Class("variations"),
		item("save-draft", "Save as draft"),
		item("save-close", "Save and close"),
	)
}

func disabledDemo(disabled *vango.BoolSignal, report reporter) *vdom.VNode {
	label := "Disable"
	if disabled.Get() {
		label = "Enable"
	}
	return ui.ButtonWrapper(
		ui.Button(ui.ButtonConfig{
			OnClick: func(*vango.MouseEvent) { disabled.Toggle() },
			Color:   vango.Const(ui.ColorSecondary),
			Variant: vango.Const(ui.VariantOutlined),
			Class:   vango.Const("toggle-disabled"),
		}, label),
		ui.Button(ui.ButtonConfig{
			OnClick:  report("save"),
			Disabled: disabled,
			Class:    vango.Const("save"),
		}, "Save"),
		ui.Button(ui.ButtonConfig{
			OnClick:      report("save with variations"),
			Disabled:     disabled,
			Variations:   variations,
			Class:        vango.Const("save-more"),
			AriaHasPopup: vango.Const(aria.HasPopupMenu),
		}, "Save…"),
	)
}

func collapses(showY, showX *vango.BoolSignal) *vdom.VNode {
	toggle := func(s *vango.BoolSignal, class, label string) *vdom.VNode {
		return ui.Button(ui.ButtonConfig{
			OnClick:      func(*vango.MouseEvent) { s.Toggle() },
			Class:        vango.Const(class),
			AriaExpanded: vango.Map[bool, aria.Expanded](s, aria.ExpandedFrom),
		}, label)
	}

	return vdom.Div(
		ui.ButtonWrapper(
			toggle(showY, "toggle-y", "Toggle vertical"),
			toggle(showX, "toggle-x", "Toggle horizontal"),
		),
		ui.Collapse(ui.CollapseConfig{Show: showY, Class: "collapse-y"},
			vdom.P("The wrapper height follows the measured height of this content."),
			vdom.P("Closing it animates back to zero."),
		),
		ui.Collapse(ui.CollapseConfig{Show: showX, Axis: ui.AxisX, Class: "collapse-x"},
			vdom.P(vdom.Class("nowrap"), "Horizontal collapse"),
		),
	)
}

// Render renders the gallery once, with refs bound, and returns the
// complete HTML document. The stylesheet is inlined unless stylesheets
// name external ones to link instead.
func Render(ctx context.Context, title string, stylesheets ...string) ([]byte, error) {
	s := live.New(Page(title))
	defer s.Close()

	tree, _, err := s.Render(ctx)
	if err != nil {
		return nil, err
	}

	page := Document(title, tree, "")
	if len(stylesheets) > 0 {
		page.Styles, page.StyleSheets = nil, stylesheets
	}

	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{})
	if err := r.RenderPage(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Document wraps a rendered tree in the gallery page. A non-empty
// sessionID binds the page to a live session.
func Document(title string, tree *vdom.VNode, sessionID string) render.PageData {
	return render.PageData{
		Title:     title,
		Body:      vdom.Div(vdom.ID(RootID), tree),
		Styles:    []string{CSS},
		SessionID: sessionID,
	}
}
