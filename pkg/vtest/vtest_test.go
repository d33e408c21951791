package vtest_test

import (
	"strings"
	"testing"

	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
	"github.com/vango-dev/controls/pkg/vtest"
)

func TestRenderToString(t *testing.T) {
	html := vtest.RenderToString(vdom.Div(vdom.Class("box"), "hi"))
	if html != `<div class="box">hi</div>` {
		t.Errorf("unexpected html: %s", html)
	}
}

func TestAttr(t *testing.T) {
	node := vdom.Button(vdom.Disabled(true), vdom.TabIndex(0), vdom.AttrOf("aria-expanded", nil))

	vtest.ExpectAttr(t, node, "disabled", "")
	vtest.ExpectAttr(t, node, "tabindex", "0")
	vtest.ExpectNoAttr(t, node, "aria-expanded")

	if _, ok := vtest.Attr(nil, "id"); ok {
		t.Error("expected nil node to have no attributes")
	}
}

func TestExpectContains(t *testing.T) {
	node := vdom.P("hello")
	vtest.ExpectContains(t, node, "hello")
	vtest.ExpectNotContains(t, node, "bye")
}

func TestMountRerendersOnClick(t *testing.T) {
	var count *vango.Signal[int]
	s := vtest.Mount(t, func() *vdom.VNode {
		count = vango.NewSignal(0)
		return vdom.Div(
			vdom.Button(vdom.Class("inc"), vdom.OnClick(func() { count.Update(func(n int) int { return n + 1 }) })),
			vdom.Span(vdom.Class("value"), vdom.Textf("%d", count.Get())),
		)
	})

	s.ClickClass("inc")
	s.ClickClass("inc")

	if got := s.Find("value").Children[0].Text; got != "2" {
		t.Errorf("expected 2, got %s", got)
	}
	if !strings.Contains(s.HTML(), ">2</span>") {
		t.Errorf("expected html to show 2, got %s", s.HTML())
	}
}
