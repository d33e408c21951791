package aria

import "testing"

func TestHasPopupString(t *testing.T) {
	tests := map[HasPopup]string{
		HasPopupFalse:   "false",
		HasPopupTrue:    "true",
		HasPopupMenu:    "menu",
		HasPopupListbox: "listbox",
		HasPopupTree:    "tree",
		HasPopupGrid:    "grid",
		HasPopupDialog:  "dialog",
		HasPopup(200):   "false",
	}
	for h, want := range tests {
		if got := h.String(); got != want {
			t.Errorf("HasPopup(%d).String() = %q, want %q", h, got, want)
		}
	}
}

func TestExpandedString(t *testing.T) {
	tests := map[Expanded]string{
		ExpandedFalse:     "false",
		ExpandedTrue:      "true",
		ExpandedUndefined: "undefined",
	}
	for e, want := range tests {
		if got := e.String(); got != want {
			t.Errorf("Expanded(%d).String() = %q, want %q", e, got, want)
		}
	}
	if ExpandedFrom(true) != ExpandedTrue || ExpandedFrom(false) != ExpandedFalse {
		t.Error("ExpandedFrom mismatch")
	}
}
