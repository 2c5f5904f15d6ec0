package borrow

import (
	"fmt"
	"math"
)

// Borrow accounting fits in one integer: 0 is free, -1 is an exclusive
// borrow, n > 0 is the number of live shared borrows. There is no direct
// transition between shared and exclusive; both pass through free.
const (
	stateFree      int32 = 0
	stateExclusive int32 = -1
)

// maxSharedBorrows bounds the shared counter. The counter never wraps:
// acquisition at the bound fails with [ErrCapacityExceeded].
const maxSharedBorrows = math.MaxInt32

// borrowState tracks the borrows of one Cell. The Cell owns it; guards
// hold a non-owning back-reference and never outlive the Cell's use.
type borrowState struct {
	borrows int32
}

func (s *borrowState) tryAcquireShared() error {
	switch s.borrows {
	case stateExclusive:
		return fmt.Errorf("%w: value is exclusively borrowed", ErrBorrowConflict)
	case maxSharedBorrows:
		return fmt.Errorf("%w: %d shared borrows are live", ErrCapacityExceeded, s.borrows)
	default:
		s.borrows++
		return nil
	}
}

func (s *borrowState) tryAcquireExclusive() error {
	switch {
	case s.borrows == stateExclusive:
		return fmt.Errorf("%w: value is exclusively borrowed", ErrBorrowConflict)
	case s.borrows > stateFree:
		return fmt.Errorf("%w: %d shared borrows are live", ErrBorrowConflict, s.borrows)
	default:
		s.borrows = stateExclusive
		return nil
	}
}

func (s *borrowState) releaseShared() {
	if s.borrows <= stateFree {
		panic(fmt.Errorf("%w: shared release with borrow count %d", ErrInvariant, s.borrows))
	}

	s.borrows--
}

func (s *borrowState) releaseExclusive() {
	if s.borrows != stateExclusive {
		panic(fmt.Errorf("%w: exclusive release with borrow count %d", ErrInvariant, s.borrows))
	}

	s.borrows = stateFree
}

// free reports whether no borrow is live.
func (s *borrowState) free() bool {
	return s.borrows == stateFree
}
