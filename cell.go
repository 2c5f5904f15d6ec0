package borrow

// Cell owns a value of type T and tracks its borrows at runtime.
//
// All access to the value goes through guards acquired here. A Cell is
// not safe for concurrent use; see the package documentation.
//
// A Cell must be obtained via [NewCell]; the zero value is usable but
// holds the zero value of T.
type Cell[T any] struct {
	_ [0]func() // prevent comparison; a Cell's identity is its pointer

	state borrowState
	value T

	// consumed is set once IntoInner extracts the value.
	consumed bool
}

// NewCell returns a Cell owning v, with no borrows live.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// TryBorrow acquires a shared (read-only) borrow.
//
// Any number of shared borrows may be live at once. On failure the
// Cell's state is unchanged.
//
// Possible errors: [ErrBorrowConflict], [ErrCapacityExceeded],
// [ErrConsumed].
func (c *Cell[T]) TryBorrow() (*Guard[T], error) {
	if c.consumed {
		return nil, ErrConsumed
	}

	if err := c.state.tryAcquireShared(); err != nil {
		return nil, err
	}

	return &Guard[T]{state: &c.state, v: &c.value}, nil
}

// TryBorrowMut acquires the exclusive (read/write) borrow.
//
// Succeeds only when no other borrow is live. On failure the Cell's
// state is unchanged.
//
// Possible errors: [ErrBorrowConflict], [ErrConsumed].
func (c *Cell[T]) TryBorrowMut() (*GuardMut[T], error) {
	if c.consumed {
		return nil, ErrConsumed
	}

	if err := c.state.tryAcquireExclusive(); err != nil {
		return nil, err
	}

	return &GuardMut[T]{state: &c.state, v: &c.value}, nil
}

// Borrow acquires a shared borrow, panicking on conflict.
//
// Use this when a conflicting borrow would be a bug; the panic value is
// an error wrapping the sentinel [Cell.TryBorrow] would have returned.
func (c *Cell[T]) Borrow() *Guard[T] {
	g, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}

	return g
}

// BorrowMut acquires the exclusive borrow, panicking on conflict.
//
// See [Cell.Borrow] for the panic contract.
func (c *Cell[T]) BorrowMut() *GuardMut[T] {
	g, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}

	return g
}

// IntoInner extracts the value, consuming the Cell.
//
// Fails with [ErrBorrowConflict] while any borrow is live. After a
// successful call every further operation on the Cell fails with
// [ErrConsumed].
func (c *Cell[T]) IntoInner() (T, error) {
	var zero T

	if c.consumed {
		return zero, ErrConsumed
	}

	if !c.state.free() {
		return zero, ErrBorrowConflict
	}

	v := c.value
	c.value = zero
	c.consumed = true

	return v, nil
}

// Replace stores v in the Cell and returns the previous value.
//
// Holds the exclusive borrow internally for the duration of the swap, so
// it panics (like [Cell.BorrowMut]) if any borrow is live.
func (c *Cell[T]) Replace(v T) T {
	g := c.BorrowMut()
	defer g.Release()

	old := *g.v
	*g.v = v

	return old
}

// Take extracts the value, leaving the zero value of T in its place.
// Panics like [Cell.Replace] if any borrow is live.
func (c *Cell[T]) Take() T {
	var zero T

	return c.Replace(zero)
}

// Swap exchanges the values of c and other.
//
// Holds the exclusive borrow of both cells for the duration, so it
// panics if either is borrowed, or if other is c itself (the second
// acquisition then conflicts with the first).
func (c *Cell[T]) Swap(other *Cell[T]) {
	g1 := c.BorrowMut()
	defer g1.Release()

	g2 := other.BorrowMut()
	defer g2.Release()

	*g1.v, *g2.v = *g2.v, *g1.v
}
