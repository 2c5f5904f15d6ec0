package borrow

import "fmt"

// Guard transforms live here as package-level functions because Go
// methods cannot introduce type parameters. Every transform consumes its
// input guard and produces exactly one handle in its place; if the
// projection fails (error or panic), the consumed borrow is released
// before the transform returns, so no borrow can leak through a failed
// transform.

// Map consumes g and returns a shared guard viewing the projection f of
// the borrowed value.
//
// The borrow itself is untouched: releasing the returned guard releases
// the Cell exactly as releasing g would have. Use Map to narrow a view
// to a sub-part; use [MapDerive] when the result is a new owned value
// rather than a projection.
func Map[T, U any](g *Guard[T], f func(T) U) *Guard[U] {
	st, v := g.take()

	ok := false
	defer func() {
		if !ok {
			st.releaseShared()
		}
	}()

	u := f(*v)

	ok = true

	return &Guard[U]{state: st, v: &u}
}

// MapMut consumes g and returns an exclusive guard viewing *f(v), which
// must point into the borrowed value so that writes through the new
// guard reach the Cell. f returning nil panics.
//
// Same release semantics as [Map].
func MapMut[T, U any](g *GuardMut[T], f func(*T) *U) *GuardMut[U] {
	st, v := g.take()

	ok := false
	defer func() {
		if !ok {
			st.releaseExclusive()
		}
	}()

	u := f(v)
	if u == nil {
		panic("borrow: MapMut projection returned nil view")
	}

	ok = true

	return &GuardMut[U]{state: st, v: u}
}

// MapDerive consumes g, computes a new owned value from the borrowed
// view, and returns a [Derived] that owns the value while keeping the
// shared borrow live until it is released.
//
// The derived value may itself reference the borrowed data (for example
// an iterator over a borrowed collection); the retained borrow
// guarantees the data stays valid and write-protected for the derived
// value's whole lifetime.
//
// If f returns an error, the borrow is released and no handle is
// produced; the error is returned wrapped. A panic in f also releases
// the borrow before unwinding.
func MapDerive[T, V any](g *Guard[T], f func(T) (V, error)) (*Derived[V], error) {
	st, v := g.take()

	ok := false
	defer func() {
		if !ok {
			st.releaseShared()
		}
	}()

	val, err := f(*v)
	if err != nil {
		return nil, fmt.Errorf("deriving value: %w", err)
	}

	ok = true

	return &Derived[V]{value: val, state: st}, nil
}

// MapDeriveMut is [MapDerive] for an exclusive borrow. The derived value
// may hold mutable references into the borrowed data; the retained
// exclusive borrow keeps every other access locked out until the
// returned [Derived] is released.
func MapDeriveMut[T, V any](g *GuardMut[T], f func(*T) (V, error)) (*Derived[V], error) {
	st, v := g.take()

	ok := false
	defer func() {
		if !ok {
			st.releaseExclusive()
		}
	}()

	val, err := f(v)
	if err != nil {
		return nil, fmt.Errorf("deriving value: %w", err)
	}

	ok = true

	return &Derived[V]{value: val, state: st, exclusive: true}, nil
}
