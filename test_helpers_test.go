package borrow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsIs runs fn and requires that it panics with an error
// matching want via errors.Is.
func requirePanicsIs(t *testing.T, want error, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T: %v", r, r)
		require.ErrorIs(t, err, want)
	}()

	fn()
}
