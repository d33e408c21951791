package vango

// Derived is a value computed from other reactive values on every read.
//
// Unlike Memo it caches nothing: each Get runs fn with the current listener
// still installed, so the reader subscribes directly to whatever fn reads.
// Use it when fn also consults non-reactive state (for example a layout
// measurement) that must be fresh on every read.
type Derived[T any] struct {
	fn func() T
}

// Derive creates a Derived from fn.
func Derive[T any](fn func() T) *Derived[T] {
	return &Derived[T]{fn: fn}
}

// Map derives a value by applying fn to the current value of r.
func Map[T, U any](r Readable[T], fn func(T) U) *Derived[U] {
	return Derive(func() U { return fn(r.Get()) })
}

// Get evaluates the derivation, subscribing the current listener to its
// dependencies.
func (d *Derived[T]) Get() T {
	return d.fn()
}

// Peek evaluates the derivation without subscribing.
func (d *Derived[T]) Peek() T {
	var v T
	Untracked(func() {
		v = d.fn()
	})
	return v
}
