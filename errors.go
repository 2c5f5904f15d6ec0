package borrow

import "errors"

// Sentinel errors returned by borrow operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, borrow.ErrBorrowConflict) {
//	    // release the conflicting guard, then retry
//	}
//
// The fail-fast entry points ([Cell.Borrow], [Cell.BorrowMut],
// [Cell.Replace], [Cell.Swap]) panic with error values wrapping these
// same sentinels.
var (
	// ErrBorrowConflict indicates an acquisition conflicted with a live
	// borrow of an incompatible class: a write borrow was requested while
	// any borrow is live, or a read borrow while a write borrow is live.
	//
	// The Cell's state is unchanged. Recovery: release the conflicting
	// guard, then retry.
	ErrBorrowConflict = errors.New("borrow: conflict with existing borrow")

	// ErrCapacityExceeded indicates the shared borrow counter is at its
	// limit. Practical borrow counts are nowhere near the limit; hitting
	// it means guards are being leaked rather than released.
	//
	// This is a programming error.
	ErrCapacityExceeded = errors.New("borrow: shared borrow limit reached")

	// ErrConsumed indicates the cell's value was already extracted by
	// [Cell.IntoInner]. A consumed cell accepts no further operations.
	//
	// This is a programming error.
	ErrConsumed = errors.New("borrow: cell value already taken")

	// ErrReleased indicates a guard was used after being released or
	// consumed by a transform. Guards are single-owner handles; a
	// transform leaves the input guard dead and the returned handle is
	// the only live one.
	//
	// This is a programming error. Surfaced only via panics.
	ErrReleased = errors.New("borrow: guard already released")

	// ErrInvariant indicates the borrow accounting reached a state that
	// does not match the releasing guard. This is unreachable through
	// the public API; if it occurs, report it as a bug in this package.
	//
	// Surfaced only via panics.
	ErrInvariant = errors.New("borrow: borrow accounting violated")
)
