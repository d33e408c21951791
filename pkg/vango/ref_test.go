package vango

import (
	"testing"

	"github.com/vango-dev/controls/pkg/vdom"
)

type fakeElement struct {
	w, h   int
	parent *fakeElement
}

func (e *fakeElement) ScrollWidth() int  { return e.w }
func (e *fakeElement) ScrollHeight() int { return e.h }
func (e *fakeElement) Contains(other vdom.Element) bool {
	o, ok := other.(*fakeElement)
	for ok && o != nil {
		if o == e {
			return true
		}
		o = o.parent
	}
	return false
}

func TestNodeRefAttachNotifies(t *testing.T) {
	ref := NewNodeRef()
	l := newTestListener()

	WithListener(l, func() {
		if ref.Get() != nil {
			t.Error("new ref should be empty")
		}
	})

	el := &fakeElement{w: 10, h: 20}
	ref.Attach(el)
	if l.getDirtyCount() != 1 {
		t.Errorf("dirty count = %d, want 1", l.getDirtyCount())
	}
	if !ref.IsSet() || ref.Current() != el {
		t.Error("ref should hold the attached element")
	}

	ref.Attach(el)
	if l.getDirtyCount() != 1 {
		t.Errorf("re-attaching the same element notified: %d", l.getDirtyCount())
	}

	ref.Detach()
	if ref.IsSet() {
		t.Error("ref should be empty after Detach")
	}
	if l.getDirtyCount() != 2 {
		t.Errorf("dirty count = %d, want 2", l.getDirtyCount())
	}
}

func TestNewNodeRefIsHookLike(t *testing.T) {
	owner := NewOwner(nil)
	var r1, r2 *NodeRef
	renderIn(owner, func() { r1 = NewNodeRef() })
	renderIn(owner, func() { r2 = NewNodeRef() })
	if r1 != r2 {
		t.Error("NewNodeRef should return the same ref on re-render")
	}
}
