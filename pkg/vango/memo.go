package vango

import (
	"sync"
	"sync/atomic"
)

// Memo is a cached computation that tracks its own dependencies.
// When any dependency changes the memo is invalidated and recomputes on the
// next read. Memos are lazy and can themselves be read as sources.
type Memo[T any] struct {
	base signalBase

	compute func() T

	value   T
	valueMu sync.RWMutex

	// valid reports whether the cached value is current.
	valid atomic.Bool

	sources   []*signalBase
	sourcesMu sync.Mutex

	// computing guards against re-entrant recomputation in dependency cycles.
	computing atomic.Bool
}

// NewMemo creates a memo for compute. The computation runs lazily on first Get.
// During render NewMemo is hook-like and refreshes the stored compute
// function so closures over render-local values stay current.
func NewMemo[T any](compute func() T) *Memo[T] {
	owner := getCurrentOwner()
	inRender := owner != nil && isInRender()

	if owner != nil {
		owner.TrackHook(HookMemo)
		if inRender {
			if slot := owner.UseHookSlot(); slot != nil {
				memo, ok := slot.(*Memo[T])
				if !ok {
					panic("vango: hook slot type mismatch for Memo")
				}
				memo.compute = compute
				memo.valid.Store(false)
				return memo
			}
		}
	}

	memo := &Memo[T]{
		base:    signalBase{id: nextID()},
		compute: compute,
	}
	if inRender {
		owner.SetHookSlot(memo)
	}
	return memo
}

// Get returns the memo's value, recomputing if necessary, and subscribes the
// current listener.
func (m *Memo[T]) Get() T {
	m.base.track()
	return m.Peek()
}

// Peek returns the memo's value without subscribing.
// It still recomputes when the cached value is stale.
func (m *Memo[T]) Peek() T {
	if !m.valid.Load() {
		m.recompute()
	}
	m.valueMu.RLock()
	defer m.valueMu.RUnlock()
	return m.value
}

// MarkDirty invalidates the memo and propagates to its subscribers.
func (m *Memo[T]) MarkDirty() {
	if m.valid.CompareAndSwap(true, false) {
		m.base.notifySubscribers()
	}
}

// ID returns the unique identifier for this memo.
func (m *Memo[T]) ID() uint64 {
	return m.base.id
}

func (m *Memo[T]) addSource(source *signalBase) {
	m.sourcesMu.Lock()
	defer m.sourcesMu.Unlock()

	for _, s := range m.sources {
		if s == source {
			return
		}
	}
	m.sources = append(m.sources, source)
}

func (m *Memo[T]) recompute() {
	if m.computing.Swap(true) {
		return
	}
	defer m.computing.Store(false)

	m.sourcesMu.Lock()
	for _, source := range m.sources {
		source.unsubscribe(m)
	}
	m.sources = m.sources[:0]
	m.sourcesMu.Unlock()

	var value T
	WithListener(m, func() {
		value = m.compute()
	})

	m.valueMu.Lock()
	m.value = value
	m.valueMu.Unlock()
	m.valid.Store(true)
}

var _ memoBase = (*Memo[int])(nil)
