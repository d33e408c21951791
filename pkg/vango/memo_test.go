package vango

import "testing"

func TestMemoComputesLazily(t *testing.T) {
	count := NewSignal(2)
	runs := 0
	doubled := NewMemo(func() int {
		runs++
		return count.Get() * 2
	})

	if runs != 0 {
		t.Fatalf("memo ran before first read: %d", runs)
	}
	if doubled.Get() != 4 {
		t.Errorf("Get() = %d, want 4", doubled.Get())
	}
	_ = doubled.Get()
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (cached)", runs)
	}
}

func TestMemoInvalidatesOnDependencyChange(t *testing.T) {
	count := NewSignal(1)
	doubled := NewMemo(func() int { return count.Get() * 2 })
	l := newTestListener()

	WithListener(l, func() { _ = doubled.Get() })
	count.Set(3)

	if got := l.getDirtyCount(); got != 1 {
		t.Errorf("dirty count = %d, want 1", got)
	}
	if doubled.Peek() != 6 {
		t.Errorf("Peek() = %d, want 6", doubled.Peek())
	}
}

func TestMemoDropsStaleDependencies(t *testing.T) {
	useA := NewSignal(true)
	a := NewSignal("a")
	b := NewSignal("b")
	m := NewMemo(func() string {
		if useA.Get() {
			return a.Get()
		}
		return b.Get()
	})

	if m.Get() != "a" {
		t.Fatalf("Get() = %q, want a", m.Get())
	}
	useA.Set(false)
	if m.Get() != "b" {
		t.Fatalf("Get() = %q, want b", m.Get())
	}

	l := newTestListener()
	WithListener(l, func() { _ = m.Get() })
	a.Set("changed")
	if got := l.getDirtyCount(); got != 0 {
		t.Errorf("dirty count = %d, want 0 after stale source write", got)
	}
}

func TestMemoHookRefreshesCompute(t *testing.T) {
	owner := NewOwner(nil)

	var m1, m2 *Memo[string]
	renderIn(owner, func() { m1 = NewMemo(func() string { return "first" }) })
	_ = m1.Get()
	renderIn(owner, func() { m2 = NewMemo(func() string { return "second" }) })

	if m1 != m2 {
		t.Fatal("NewMemo should return the same memo on re-render")
	}
	if m2.Get() != "second" {
		t.Errorf("Get() = %q, want second", m2.Get())
	}
}
