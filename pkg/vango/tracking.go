package vango

import (
	"runtime"
	"sync"
)

// TrackingContext holds the reactive state for a goroutine.
// Each goroutine has its own tracking context so that sessions rendering on
// different goroutines never observe each other's listeners or batches.
type TrackingContext struct {
	// currentOwner is the Owner that will own newly created signals/effects.
	currentOwner *Owner

	// currentListener is what's currently tracking dependencies.
	// nil means no tracking (reads don't create subscriptions).
	currentListener Listener

	// batchDepth tracks nested Batch() calls.
	batchDepth int

	// pendingUpdates accumulates listeners to notify when a batch completes.
	pendingUpdates []Listener

	// renderDepth is > 0 while a component render is in progress.
	// Hook-like constructors use it to reuse their slot instead of
	// allocating a fresh primitive on every render.
	renderDepth int

	// currentCtx holds the host runtime (e.g. a live session).
	// Stored as any to avoid importing the host packages.
	currentCtx any
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns the identifier of the current goroutine, parsed
// from the header line of runtime.Stack ("goroutine <id> [...]").
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := 10; i < n; i++ { // Skip "goroutine "
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

// getTrackingContext returns the tracking context for the current goroutine,
// creating it on first use.
func getTrackingContext() *TrackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*TrackingContext)
	}

	ctx := &TrackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener sets the current listener and returns the previous one.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

func getCurrentOwner() *Owner {
	return getTrackingContext().currentOwner
}

// setCurrentOwner sets the current owner and returns the previous one.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

func getBatchDepth() int {
	return getTrackingContext().batchDepth
}

func incrementBatchDepth() {
	getTrackingContext().batchDepth++
}

// decrementBatchDepth decreases the batch depth and reports whether the
// outermost batch just completed.
func decrementBatchDepth() bool {
	ctx := getTrackingContext()
	ctx.batchDepth--
	return ctx.batchDepth == 0
}

func queuePendingUpdate(l Listener) {
	ctx := getTrackingContext()
	ctx.pendingUpdates = append(ctx.pendingUpdates, l)
}

// drainPendingUpdates returns and clears the pending updates queue.
func drainPendingUpdates() []Listener {
	ctx := getTrackingContext()
	updates := ctx.pendingUpdates
	ctx.pendingUpdates = nil
	return updates
}

func beginRender() {
	getTrackingContext().renderDepth++
}

func endRender() {
	ctx := getTrackingContext()
	if ctx.renderDepth > 0 {
		ctx.renderDepth--
	}
}

func isInRender() bool {
	return getTrackingContext().renderDepth > 0
}

// WithOwner runs fn with owner as the current owner.
// Signals, effects and cleanups created inside fn belong to owner.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// WithListener runs fn with l as the tracking listener.
// Every signal read inside fn subscribes l.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// ReleaseGoroutine removes the tracking context of the calling goroutine.
// Hosts call it when a goroutine that rendered components is about to exit.
func ReleaseGoroutine() {
	trackingContexts.Delete(getGoroutineID())
}

func getCurrentCtx() any {
	return getTrackingContext().currentCtx
}

func setCurrentCtx(c any) any {
	ctx := getTrackingContext()
	old := ctx.currentCtx
	ctx.currentCtx = c
	return old
}

// WithCtx runs fn with c as the host runtime context.
// UseCtx and the host-dependent helpers (OnClickOutside, CurrentPath)
// resolve against c while fn runs.
func WithCtx(c any, fn func()) {
	old := setCurrentCtx(c)
	defer setCurrentCtx(old)
	fn()
}
