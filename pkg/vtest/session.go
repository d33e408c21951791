package vtest

import (
	"context"
	"testing"

	"github.com/vango-dev/controls/pkg/live"
	"github.com/vango-dev/controls/pkg/vango"
	"github.com/vango-dev/controls/pkg/vdom"
)

// TestSession wraps a live.Session mounted for a test. Every operation fails
// the test on error and leaves the session rendered.
type TestSession struct {
	*live.Session
	t testing.TB
}

// Mount creates a live session for root, renders it and closes it when the
// test ends.
//
// Example:
//
//	s := vtest.Mount(t, func() *vdom.VNode {
//	    return ui.Button(ui.ButtonConfig{OnClick: onClick}, "Save")
//	})
//	s.ClickClass("vango-btn")
func Mount(t testing.TB, root func() *vdom.VNode, opts ...live.Option) *TestSession {
	t.Helper()
	s := &TestSession{Session: live.New(root, opts...), t: t}
	t.Cleanup(s.Close)
	s.Rerender()
	return s
}

// Rerender renders pending changes and returns the tree.
func (s *TestSession) Rerender() *vdom.VNode {
	s.t.Helper()
	tree, _, err := s.Render(context.Background())
	if err != nil {
		s.t.Fatalf("render: %v", err)
	}
	return tree
}

// Find returns the first element carrying class in the current tree.
func (s *TestSession) Find(class string) *vdom.VNode {
	s.t.Helper()
	return FindByClass(s.t, s.Rerender(), class)
}

// ClickHID clicks the element hid.
func (s *TestSession) ClickHID(hid string) {
	s.t.Helper()
	if err := s.Click(context.Background(), hid, vango.MouseEvent{}); err != nil {
		s.t.Fatalf("click %s: %v", hid, err)
	}
}

// ClickClass clicks the first element carrying class.
func (s *TestSession) ClickClass(class string) {
	s.t.Helper()
	s.ClickHID(s.Find(class).HID)
}

// MeasureClass reports a scroll size for the first element carrying class.
func (s *TestSession) MeasureClass(class string, width, height int) {
	s.t.Helper()
	hid := s.Find(class).HID
	if err := s.Measure(context.Background(), hid, width, height); err != nil {
		s.t.Fatalf("measure %s: %v", hid, err)
	}
}

// NavigateTo moves the session to path.
func (s *TestSession) NavigateTo(path string) {
	s.t.Helper()
	if err := s.Navigate(context.Background(), path); err != nil {
		s.t.Fatalf("navigate %s: %v", path, err)
	}
}
