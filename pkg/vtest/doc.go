// Package vtest provides testing helpers for vango controls.
//
// # Render Assertions
//
// Assert on rendered HTML output or on single attributes:
//
//	vtest.ExpectContains(t, node, "vango-btn")
//	vtest.ExpectAttr(t, node, "tabindex", "0")
//	vtest.ExpectNoAttr(t, node, "disabled")
//
// # Mounted Sessions
//
// Mount hosts a component in a live session so that refs are bound,
// click-outside listeners are registered and events re-render the tree:
//
//	func TestDropdownOpens(t *testing.T) {
//	    s := vtest.Mount(t, func() *vdom.VNode {
//	        return ui.Button(ui.ButtonConfig{
//	            OnClick:    func(*vango.MouseEvent) {},
//	            Variations: variations,
//	        }, "Save")
//	    })
//	    s.ClickClass("dropdown-trigger")
//	    vtest.ExpectContains(t, s.Find("dropdown"), "active")
//	}
package vtest
