package borrow

import "fmt"

// Guard is a live shared (read-only) borrow of a Cell's value.
//
// A Guard is a single-owner handle: it is released exactly once, either
// by [Guard.Release] or by being consumed by [Map]/[MapDerive]. Using a
// guard after that panics with an error wrapping [ErrReleased].
type Guard[T any] struct {
	state *borrowState // nil once released or consumed
	v     *T
}

// Value returns the borrowed value.
func (g *Guard[T]) Value() T {
	if g.state == nil {
		panic(fmt.Errorf("%w: read through shared guard", ErrReleased))
	}

	return *g.v
}

// Release ends the borrow, decrementing the Cell's shared count.
//
// Release is idempotent: calling it again (or after the guard was
// consumed by a transform) is a no-op.
func (g *Guard[T]) Release() {
	if g.state == nil {
		return
	}

	st := g.state
	g.state, g.v = nil, nil

	st.releaseShared()
}

// take consumes the guard on behalf of a transform, transferring the
// state back-reference and view to the caller. The caller becomes
// responsible for exactly one releaseShared.
func (g *Guard[T]) take() (*borrowState, *T) {
	if g.state == nil {
		panic(fmt.Errorf("%w: transform of shared guard", ErrReleased))
	}

	st, v := g.state, g.v
	g.state, g.v = nil, nil

	return st, v
}

// GuardMut is the live exclusive (read/write) borrow of a Cell's value.
//
// Same ownership contract as [Guard]: released exactly once, via
// [GuardMut.Release] or by being consumed by [MapMut]/[MapDeriveMut].
type GuardMut[T any] struct {
	state *borrowState // nil once released or consumed
	v     *T
}

// Value returns a pointer to the borrowed value. Writes through it
// mutate the value owned by the Cell. The pointer must not be retained
// past the guard's release.
func (g *GuardMut[T]) Value() *T {
	if g.state == nil {
		panic(fmt.Errorf("%w: access through exclusive guard", ErrReleased))
	}

	return g.v
}

// Release ends the borrow, returning the Cell to free. Idempotent.
func (g *GuardMut[T]) Release() {
	if g.state == nil {
		return
	}

	st := g.state
	g.state, g.v = nil, nil

	st.releaseExclusive()
}

func (g *GuardMut[T]) take() (*borrowState, *T) {
	if g.state == nil {
		panic(fmt.Errorf("%w: transform of exclusive guard", ErrReleased))
	}

	st, v := g.state, g.v
	g.state, g.v = nil, nil

	return st, v
}
