package borrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Guard_Release_Is_Idempotent(t *testing.T) {
	t.Parallel()

	cell := NewCell("v")

	g := cell.Borrow()
	g.Release()
	g.Release() // no-op, must not double-decrement

	require.True(t, cell.state.free(), "cell should be free after release")

	w, err := cell.TryBorrowMut()
	require.NoError(t, err)
	w.Release()
	w.Release() // no-op

	assert.True(t, cell.state.free())
}

func Test_Guard_Value_Panics_After_Release(t *testing.T) {
	t.Parallel()

	cell := NewCell("v")

	g := cell.Borrow()
	g.Release()

	requirePanicsIs(t, ErrReleased, func() { g.Value() })
}

func Test_GuardMut_Value_Panics_After_Release(t *testing.T) {
	t.Parallel()

	cell := NewCell("v")

	w := cell.BorrowMut()
	w.Release()

	requirePanicsIs(t, ErrReleased, func() { w.Value() })
}

func Test_Guard_Release_After_Transform_Is_A_NoOp(t *testing.T) {
	t.Parallel()

	cell := NewCell([]string{"a", "b"})

	g := cell.Borrow()
	mapped := Map(g, func(v []string) string { return v[0] })

	// The original guard is dead; releasing it must not touch the borrow
	// now owned by the mapped guard.
	g.Release()

	_, err := cell.TryBorrowMut()
	require.ErrorIs(t, err, ErrBorrowConflict, "borrow should still be held by the mapped guard")

	mapped.Release()
	assert.True(t, cell.state.free())
}
