package borrow

import "fmt"

// Derived owns a value computed from a borrowed view together with the
// borrow that produced it.
//
// The retained borrow is never exposed; its sole purpose is to keep the
// Cell borrowed for exactly as long as the derived value exists. The
// derived value is owned by this handle, so [Derived.Value] hands out a
// mutable pointer regardless of the retained borrow's class - the class
// only decides how the Cell is released.
//
// A Derived is obtained via [MapDerive] or [MapDeriveMut]; the zero
// value is not usable.
type Derived[V any] struct {
	value     V
	state     *borrowState // retained borrow; nil once released
	exclusive bool         // class of the retained borrow
}

// Value returns a pointer to the owned derived value. The pointer (and
// anything the value references in the borrowed data) stays valid until
// [Derived.Release].
func (d *Derived[V]) Value() *V {
	if d.state == nil {
		panic(fmt.Errorf("%w: access through derived guard", ErrReleased))
	}

	return &d.value
}

// Release drops the derived value, then releases the retained borrow.
//
// The value is zeroed before the borrow ends: it may hold references
// into the borrowed data and must not remain reachable once the Cell is
// writable again. Idempotent.
func (d *Derived[V]) Release() {
	if d.state == nil {
		return
	}

	st := d.state
	d.state = nil

	var zero V
	d.value = zero

	if d.exclusive {
		st.releaseExclusive()
	} else {
		st.releaseShared()
	}
}
