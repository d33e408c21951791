package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/controls/pkg/render"
	"github.com/vango-dev/controls/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(ui.ButtonGroup())
//	if !strings.Contains(html, "vango-btn-group") {
//	    t.Error("missing group element")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttr asserts that node has attribute attr with value as rendered.
//
// Example:
//
//	vtest.ExpectAttr(t, btn, "aria-disabled", "true")
func ExpectAttr(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	got, ok := Attr(node, attr)
	if !ok {
		t.Errorf("expected attribute %s=%q, attribute is absent", attr, value)
		return
	}
	if got != value {
		t.Errorf("expected attribute %s=%q, got %q", attr, value, got)
	}
}

// ExpectNoAttr asserts that node does not render attribute attr.
func ExpectNoAttr(t testing.TB, node *vdom.VNode, attr string) {
	t.Helper()
	if got, ok := Attr(node, attr); ok {
		t.Errorf("expected attribute %s to be absent, got %q", attr, got)
	}
}

// Attr returns the rendered value of attribute attr on node. Boolean
// attributes render as "".
func Attr(node *vdom.VNode, attr string) (string, bool) {
	if node == nil {
		return "", false
	}
	v, ok := vdom.EffectiveAttrs(node)[attr]
	return v, ok
}

// FindByClass returns the first element under node carrying class.
func FindByClass(t testing.TB, node *vdom.VNode, class string) *vdom.VNode {
	t.Helper()
	found := vdom.FindByClass(node, class)
	if found == nil {
		t.Fatalf("no element with class %q in:\n%s", class, truncate(RenderToString(node), 500))
	}
	return found
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
