package vango

// Readable is a value that can be read reactively.
//
// Get subscribes the current listener (if any); Peek reads without
// subscribing. Signal, Memo, Derived and Static all implement Readable, so
// component options can accept either a constant or a live value.
type Readable[T any] interface {
	Get() T
	Peek() T
}

// Static is a Readable that never changes.
type Static[T any] struct {
	value T
}

// Const wraps a constant value as a Readable.
func Const[T any](value T) Static[T] {
	return Static[T]{value: value}
}

// Get returns the constant value.
func (s Static[T]) Get() T { return s.value }

// Peek returns the constant value.
func (s Static[T]) Peek() T { return s.value }

// Or returns r, or a constant fallback when r is nil.
func Or[T any](r Readable[T], fallback T) Readable[T] {
	if r == nil {
		return Const(fallback)
	}
	return r
}

// OrZero returns r, or a constant zero value when r is nil.
func OrZero[T any](r Readable[T]) Readable[T] {
	var zero T
	return Or(r, zero)
}

var (
	_ Readable[int] = (*Signal[int])(nil)
	_ Readable[int] = (*Memo[int])(nil)
	_ Readable[int] = (*Derived[int])(nil)
	_ Readable[int] = Static[int]{}
)
