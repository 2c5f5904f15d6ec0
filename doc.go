// Package borrow provides a runtime-checked single-owner value cell.
//
// A [Cell] owns one value and grants either any number of concurrent
// read-only views ([Guard]) or exactly one read/write view ([GuardMut]).
// The aliasing rule is enforced at runtime: acquiring a view that would
// conflict with a live one fails immediately instead of waiting.
//
// # Basic Usage
//
//	cell := borrow.NewCell([]string{"a", "b", "c"})
//
//	// Read
//	g, err := cell.TryBorrow()
//	if err != nil {
//	    // a conflicting GuardMut is live; release it and retry
//	}
//	_ = g.Value()
//	g.Release()
//
//	// Write
//	w := cell.BorrowMut() // panics on conflict
//	*w.Value() = append(*w.Value(), "d")
//	w.Release()
//
// Guards are single-owner handles. Release ends the borrow and is
// idempotent; any other use of a guard after it has been released (or
// consumed by a transform) is a programming error and panics.
//
// # Transforms
//
// [Map] and [MapMut] consume a guard and return a guard of the same
// mutability class viewing a projection of the borrowed value. The borrow
// itself is untouched: releasing the new guard releases the Cell exactly
// as releasing the original would have.
//
// [MapDerive] and [MapDeriveMut] consume a guard and compute a new owned
// value from the borrowed view, for example an iterator over a borrowed
// collection. The returned [Derived] owns that value and keeps the borrow
// live until it is released, so the derived value can safely reference the
// borrowed data for its whole lifetime:
//
//	g := cell.Borrow()
//	it, err := borrow.MapDerive(g, func(items []string) (*Cursor, error) {
//	    return NewCursor(items), nil
//	})
//	// cell stays read-borrowed until it.Release()
//
// # Concurrency
//
// borrow is not a synchronization primitive. A Cell and its guards must be
// confined to a single goroutine or synchronized externally; no operation
// blocks or waits for a conflicting borrow to end.
//
// # Error Handling
//
// The Try entry points return sentinel errors checkable with [errors.Is]
// ([ErrBorrowConflict], [ErrCapacityExceeded], [ErrConsumed]). The
// fail-fast entry points ([Cell.Borrow], [Cell.BorrowMut], [Cell.Replace],
// [Cell.Swap]) panic with error values wrapping the same sentinels; they
// are for callers that have already reasoned about aliasing and want a
// hard signal on bugs.
package borrow
