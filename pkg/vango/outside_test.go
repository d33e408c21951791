package vango

import "testing"

type fakeRegistry struct {
	handlers map[int]func()
	next     int
}

func (r *fakeRegistry) RegisterClickOutside(_ *NodeRef, fn func()) func() {
	if r.handlers == nil {
		r.handlers = make(map[int]func())
	}
	id := r.next
	r.next++
	r.handlers[id] = fn
	return func() { delete(r.handlers, id) }
}

func (r *fakeRegistry) fire() {
	for _, fn := range r.handlers {
		fn()
	}
}

func TestOnClickOutsideRegistersOnce(t *testing.T) {
	reg := &fakeRegistry{}
	owner := NewOwner(nil)
	calls := ""

	for _, tag := range []string{"a", "b", "c"} {
		tag := tag
		WithCtx(reg, func() {
			renderIn(owner, func() {
				ref := NewNodeRef()
				OnClickOutside(ref, func() { calls += tag })
			})
		})
	}

	if len(reg.handlers) != 1 {
		t.Fatalf("registrations = %d, want 1", len(reg.handlers))
	}
	reg.fire()
	if calls != "c" {
		t.Errorf("calls = %q, want the latest handler", calls)
	}

	owner.Dispose()
	if len(reg.handlers) != 0 {
		t.Errorf("registrations after dispose = %d, want 0", len(reg.handlers))
	}
}

func TestOnClickOutsideWithoutHost(t *testing.T) {
	owner := NewOwner(nil)
	renderIn(owner, func() {
		OnClickOutside(NewNodeRef(), func() {})
	})
	owner.Dispose()
}

type fakeLocator string

func (l fakeLocator) Path() string { return string(l) }

func TestCurrentPath(t *testing.T) {
	if CurrentPath() != "" {
		t.Error("CurrentPath should be empty without a host")
	}
	WithCtx(fakeLocator("/docs"), func() {
		if CurrentPath() != "/docs" {
			t.Errorf("CurrentPath() = %q, want /docs", CurrentPath())
		}
	})
}
