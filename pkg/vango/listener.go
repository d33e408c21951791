package vango

// Listener is anything that can be notified when a dependency changes.
// Components, memos and effects implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	// For components, this schedules a re-render.
	// For memos, this invalidates the cached value.
	// For effects, this schedules the effect to re-run.
	MarkDirty()

	// ID returns a unique identifier used for deduplication during batching.
	ID() uint64
}

// Cleanup is a function returned by effects to release resources.
// It is called before the effect re-runs and when the effect is disposed.
type Cleanup func()
