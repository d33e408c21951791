package vango

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DebugMode enables hook order validation. Set it at startup.
var DebugMode bool

// HookType identifies the kind of hook call for order validation.
type HookType uint8

const (
	HookSignal HookType = iota + 1
	HookMemo
	HookEffect
	HookRef
	HookClickOutside
)

// String returns a human-readable name for the hook type.
func (h HookType) String() string {
	switch h {
	case HookSignal:
		return "Signal"
	case HookMemo:
		return "Memo"
	case HookEffect:
		return "Effect"
	case HookRef:
		return "Ref"
	case HookClickOutside:
		return "ClickOutside"
	default:
		return "Unknown"
	}
}

// Owner is a component scope that owns reactive primitives.
// Disposing an Owner disposes its effects, runs its cleanups and disposes
// its children, so a control's listeners never outlive the control.
type Owner struct {
	id     uint64
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	effects   []*Effect
	effectsMu sync.Mutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	pendingEffects   []*Effect
	pendingEffectsMu sync.Mutex

	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool

	// Hook order as recorded by the first render (DebugMode only).
	hookOrder   []HookType
	hookIndex   int
	renderCount int

	// Hook slots give hook-like constructors a stable identity across
	// renders of the same owner.
	hookSlots   []any
	hookSlotIdx int
}

// NewOwner creates an Owner. A non-nil parent adopts it as a child.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Owner) snapshotChildren() []*Owner {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	return children
}

func (o *Owner) registerEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.effectsMu.Lock()
	defer o.effectsMu.Unlock()
	o.effects = append(o.effects, e)
}

// OnCleanup registers fn to run when the Owner is disposed.
// On an already disposed Owner fn runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

func (o *Owner) scheduleEffect(e *Effect) {
	if o.disposed.Load() {
		return
	}
	o.pendingEffectsMu.Lock()
	defer o.pendingEffectsMu.Unlock()
	o.pendingEffects = append(o.pendingEffects, e)
}

// RunPendingEffects runs the effects scheduled on this Owner and its
// children. Hosts call it after each render.
func (o *Owner) RunPendingEffects() {
	if o.disposed.Load() {
		return
	}

	o.pendingEffectsMu.Lock()
	effects := o.pendingEffects
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()

	for _, e := range effects {
		if e.pending.Load() {
			e.run()
		}
	}

	for _, child := range o.snapshotChildren() {
		child.RunPendingEffects()
	}
}

// HasPendingEffects reports whether this Owner or any child has pending effects.
func (o *Owner) HasPendingEffects() bool {
	if o.disposed.Load() {
		return false
	}

	o.pendingEffectsMu.Lock()
	hasPending := len(o.pendingEffects) > 0
	o.pendingEffectsMu.Unlock()
	if hasPending {
		return true
	}

	for _, child := range o.snapshotChildren() {
		if child.HasPendingEffects() {
			return true
		}
	}
	return false
}

// Dispose disposes children (last created first), effects and cleanups.
// Cleanups run in reverse registration order. Dispose is idempotent.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.effectsMu.Lock()
	effects := o.effects
	o.effects = nil
	o.effectsMu.Unlock()
	for _, e := range effects {
		e.dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.pendingEffectsMu.Lock()
	o.pendingEffects = nil
	o.pendingEffectsMu.Unlock()
}

// SetValue stores a scoped value on this Owner.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue looks key up on this Owner and then on its ancestors.
func (o *Owner) GetValue(key any) any {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		v, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return v
		}
	}
	return nil
}

// StartRender marks the beginning of a component render and rewinds the
// hook slot cursor.
func (o *Owner) StartRender() {
	beginRender()
	o.hookSlotIdx = 0
	if DebugMode {
		o.hookIndex = 0
	}
}

// EndRender marks the end of a component render. In DebugMode it panics if
// fewer hooks ran than on the first render.
func (o *Owner) EndRender() {
	endRender()

	if !DebugMode {
		return
	}
	if o.renderCount == 0 {
		o.renderCount = 1
	} else if o.hookIndex < len(o.hookOrder) {
		panic(fmt.Sprintf("vango: hook order changed: expected %d hooks, got %d",
			len(o.hookOrder), o.hookIndex))
	}
}

// TrackHook records a hook call. In DebugMode a hook sequence that differs
// from the first render panics.
func (o *Owner) TrackHook(ht HookType) {
	if !DebugMode {
		return
	}

	if o.renderCount == 0 {
		o.hookOrder = append(o.hookOrder, ht)
	} else {
		if o.hookIndex >= len(o.hookOrder) {
			panic(fmt.Sprintf("vango: hook order changed: extra %s hook at index %d",
				ht, o.hookIndex))
		}
		if expected := o.hookOrder[o.hookIndex]; expected != ht {
			panic(fmt.Sprintf("vango: hook order changed at index %d: expected %s, got %s",
				o.hookIndex, expected, ht))
		}
	}
	o.hookIndex++
}

// UseHookSlot returns the value stored in the current hook slot and
// advances the cursor. It returns nil on the first render; the caller then
// creates the value and stores it with SetHookSlot.
func (o *Owner) UseHookSlot() any {
	idx := o.hookSlotIdx
	o.hookSlotIdx++
	if idx < len(o.hookSlots) {
		return o.hookSlots[idx]
	}
	return nil
}

// SetHookSlot stores value in the slot just claimed by UseHookSlot.
func (o *Owner) SetHookSlot(value any) {
	o.hookSlots = append(o.hookSlots, value)
}
