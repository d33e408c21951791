package vango

import (
	"reflect"
	"sync"
)

// signalBase provides type-erased subscriber management.
// It is embedded in Signal[T], Memo[T] and NodeRef to share subscription logic.
type signalBase struct {
	id uint64

	subs  []Listener
	subMu sync.RWMutex
}

// subscribe adds a listener, deduplicating by listener ID.
func (s *signalBase) subscribe(l Listener) {
	if l == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

func (s *signalBase) unsubscribe(l Listener) {
	if l == nil {
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// track subscribes the current listener, if any, and records this source on
// effects and memos so they can unsubscribe before their next run.
func (s *signalBase) track() {
	listener := getCurrentListener()
	if listener == nil {
		return
	}
	s.subscribe(listener)

	switch l := listener.(type) {
	case *Effect:
		l.addSource(s)
	case memoBase:
		l.addSource(s)
	}
}

// notifySubscribers notifies all subscribers that this source changed.
// Subscribers are copied first so no lock is held while they run.
func (s *signalBase) notifySubscribers() {
	s.subMu.RLock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	if getBatchDepth() > 0 {
		for _, sub := range subs {
			queuePendingUpdate(sub)
		}
		return
	}
	for _, sub := range subs {
		sub.MarkDirty()
	}
}

// Signal is a reactive value container.
// Reading a Signal with Get during a tracked context (component render, memo
// computation, or effect execution) subscribes the current listener to
// future changes.
type Signal[T any] struct {
	base signalBase

	value T
	mu    sync.RWMutex

	// equal decides whether a write changes the value. nil uses defaultEquals.
	equal func(T, T) bool
}

// NewSignal creates a new signal with the given initial value.
//
// Called during a component render, NewSignal is hook-like: the first render
// allocates the signal and later renders of the same owner get the same
// instance back (initial is ignored after the first render). It must
// therefore be called unconditionally and in a stable order.
func NewSignal[T any](initial T) *Signal[T] {
	owner := getCurrentOwner()
	inRender := owner != nil && isInRender()

	if owner != nil {
		owner.TrackHook(HookSignal)
		if inRender {
			if slot := owner.UseHookSlot(); slot != nil {
				s, ok := slot.(*Signal[T])
				if !ok {
					panic("vango: hook slot type mismatch for Signal")
				}
				return s
			}
		}
	}

	s := &Signal[T]{
		base:  signalBase{id: nextID()},
		value: initial,
	}
	if inRender {
		owner.SetHookSlot(s)
	}
	return s
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	// Track after releasing the value lock.
	s.base.track()
	return value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// Update atomically reads and replaces the value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	newValue := fn(s.value)
	changed := !s.equals(s.value, newValue)
	if changed {
		s.value = newValue
	}
	s.mu.Unlock()

	if changed {
		s.base.notifySubscribers()
	}
}

// WithEquals configures a custom equality function and returns the signal.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.base.id
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for common comparable kinds and reflect.DeepEqual
// for everything else.
func defaultEquals[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		bv, ok := any(b).(int)
		return ok && av == bv
	case int64:
		bv, ok := any(b).(int64)
		return ok && av == bv
	case uint64:
		bv, ok := any(b).(uint64)
		return ok && av == bv
	case float64:
		bv, ok := any(b).(float64)
		return ok && av == bv
	case string:
		bv, ok := any(b).(string)
		return ok && av == bv
	case bool:
		bv, ok := any(b).(bool)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}

// memoBase lets sources recognize generic Memo listeners.
type memoBase interface {
	Listener
	addSource(source *signalBase)
}
