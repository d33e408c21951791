package vango

import (
	"sync"
	"sync/atomic"
)

// Effect is a reactive side effect that re-runs when its dependencies change.
//
// Effects run once when created. Later runs are scheduled on the owning
// Owner and executed by RunPendingEffects after the host finishes a render.
// An effect may return a Cleanup that runs before the next run and on
// disposal.
type Effect struct {
	id uint64

	fn      func() Cleanup
	cleanup Cleanup

	sources   []*signalBase
	sourcesMu sync.Mutex

	owner *Owner

	pending  atomic.Bool
	disposed atomic.Bool
}

// MarkDirty schedules the effect on its owner. Implements Listener.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	if e.pending.CompareAndSwap(false, true) {
		if e.owner != nil {
			e.owner.scheduleEffect(e)
		} else {
			e.run()
		}
	}
}

// ID implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

func (e *Effect) run() {
	if e.disposed.Load() {
		return
	}
	e.pending.Store(false)

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = e.sources[:0]
	e.sourcesMu.Unlock()

	WithListener(e, func() {
		e.cleanup = e.fn()
	})
}

func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

func (e *Effect) dispose() {
	if e.disposed.Swap(true) {
		return
	}

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sourcesMu.Lock()
	for _, source := range e.sources {
		source.unsubscribe(e)
	}
	e.sources = nil
	e.sourcesMu.Unlock()
}

// CreateEffect creates and immediately runs an effect owned by the current
// owner.
//
//	CreateEffect(func() Cleanup {
//	    log.Println("open:", open.Get())
//	    return nil
//	})
//
// Inside a render, the effect is created once per owner and its function is
// refreshed on later renders.
func CreateEffect(fn func() Cleanup) *Effect {
	owner := getCurrentOwner()
	inRender := owner != nil && isInRender()

	if owner != nil {
		owner.TrackHook(HookEffect)
		if inRender {
			if slot := owner.UseHookSlot(); slot != nil {
				e, ok := slot.(*Effect)
				if !ok {
					panic("vango: hook slot type mismatch for Effect")
				}
				e.fn = fn
				return e
			}
		}
	}

	e := &Effect{
		id:    nextID(),
		fn:    fn,
		owner: owner,
	}
	if owner != nil {
		owner.registerEffect(e)
	}
	if inRender {
		owner.SetHookSlot(e)
	}

	e.run()
	return e
}
