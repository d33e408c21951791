package vango

import "testing"

func TestBatchDeduplicatesNotifications(t *testing.T) {
	a := NewSignal(0)
	b := NewSignal(0)
	l := newTestListener()

	WithListener(l, func() {
		_ = a.Get()
		_ = b.Get()
	})

	Batch(func() {
		a.Set(1)
		b.Set(1)
		if l.getDirtyCount() != 0 {
			t.Error("listener notified before batch completed")
		}
	})

	if got := l.getDirtyCount(); got != 1 {
		t.Errorf("dirty count = %d, want 1", got)
	}
}

func TestNestedBatch(t *testing.T) {
	s := NewSignal(0)
	l := newTestListener()
	WithListener(l, func() { _ = s.Get() })

	Batch(func() {
		Batch(func() { s.Set(1) })
		if l.getDirtyCount() != 0 {
			t.Error("inner batch should not flush")
		}
	})
	if l.getDirtyCount() != 1 {
		t.Errorf("dirty count = %d, want 1", l.getDirtyCount())
	}
}

func TestBatchFlushesOnPanic(t *testing.T) {
	s := NewSignal(0)
	l := newTestListener()
	WithListener(l, func() { _ = s.Get() })

	func() {
		defer func() { _ = recover() }()
		Batch(func() {
			s.Set(1)
			panic("boom")
		})
	}()

	if getBatchDepth() != 0 {
		t.Errorf("batch depth = %d, want 0", getBatchDepth())
	}
	if l.getDirtyCount() != 1 {
		t.Errorf("dirty count = %d, want 1", l.getDirtyCount())
	}
}

func TestUntracked(t *testing.T) {
	s := NewSignal(0)
	l := newTestListener()

	WithListener(l, func() {
		Untracked(func() { _ = s.Get() })
	})
	s.Set(1)
	if l.getDirtyCount() != 0 {
		t.Errorf("dirty count = %d, want 0", l.getDirtyCount())
	}
}
