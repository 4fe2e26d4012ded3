package blink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStateZeroValue verifies the power-on state is Stopped.
func TestStateZeroValue(t *testing.T) {
	t.Parallel()

	var s State
	require.Equal(t, Stopped, s)
	require.Equal(t, "stopped", s.String())
	require.Equal(t, "running", Running.String())
}

// TestButtonStrings verifies button names used in logs and test output.
func TestButtonStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "start", ButtonStart.String())
	require.Equal(t, "stop", ButtonStop.String())

	// The zero value matches no physical input.
	require.Equal(t, "none", ButtonNone.String())
	require.Equal(t, "none", Button(42).String())
}
