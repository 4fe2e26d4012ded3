package sim

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/blink-button/internal/domain/blink"
	"github.com/oshokin/blink-button/internal/execmode"
	"github.com/oshokin/blink-button/internal/hal"
)

// TestPressDelivery verifies presses reach the handler with the board's mode tag.
func TestPressDelivery(t *testing.T) {
	t.Parallel()

	board := New()

	var (
		gotButton blink.Button
		gotMode   execmode.Mode
	)

	require.NoError(t, board.Watch(context.Background(), func(ctx context.Context, button blink.Button) {
		gotButton = button
		gotMode = execmode.FromContext(ctx)
	}))

	board.Press(context.Background(), blink.ButtonStart)
	require.Equal(t, blink.ButtonStart, gotButton)
	require.Equal(t, execmode.Thread, gotMode)

	// Interrupt-mode boards tag accordingly.
	irq := New(WithMode(execmode.Interrupt))
	require.NoError(t, irq.Watch(context.Background(), func(ctx context.Context, _ blink.Button) {
		gotMode = execmode.FromContext(ctx)
	}))

	irq.Press(context.Background(), blink.ButtonStop)
	require.Equal(t, execmode.Interrupt, gotMode)
}

// TestPressBeforeWatchAndAfterClose verifies edges are dropped while unarmed.
func TestPressBeforeWatchAndAfterClose(t *testing.T) {
	t.Parallel()

	board := New()

	// No handler armed yet: must not panic, nothing delivered.
	board.Press(context.Background(), blink.ButtonStart)

	delivered := 0
	require.NoError(t, board.Watch(context.Background(), func(context.Context, blink.Button) {
		delivered++
	}))

	board.Press(context.Background(), blink.ButtonStart)
	require.NoError(t, board.Close())
	board.Press(context.Background(), blink.ButtonStop)

	require.Equal(t, 1, delivered)
}

// TestInputStreamFeedsPresses verifies the stdin-style press feed.
func TestInputStreamFeedsPresses(t *testing.T) {
	t.Parallel()

	board := New(WithInput(strings.NewReader("1\nnoise\n\nstop\n")))

	presses := make(chan blink.Button, 4)
	require.NoError(t, board.Watch(context.Background(), func(_ context.Context, button blink.Button) {
		presses <- button
	}))

	require.Equal(t, blink.ButtonStart, waitPress(t, presses))
	require.Equal(t, blink.ButtonStop, waitPress(t, presses))
}

// TestLEDRecording verifies toggle counting and the off state.
func TestLEDRecording(t *testing.T) {
	t.Parallel()

	var led LED

	require.False(t, led.Level())
	require.NoError(t, led.Toggle())
	require.True(t, led.Level())
	require.NoError(t, led.Toggle())
	require.False(t, led.Level())
	require.Equal(t, 2, led.Toggles())

	require.NoError(t, led.Toggle())
	require.NoError(t, led.Off())
	require.False(t, led.Level())
}

// TestBoardSatisfiesInterface pins the hal.Board contract.
func TestBoardSatisfiesInterface(t *testing.T) {
	t.Parallel()

	var _ hal.Board = New()
}

// waitPress reads one press or fails the test after a timeout.
func waitPress(t *testing.T, presses <-chan blink.Button) blink.Button {
	t.Helper()

	select {
	case button := <-presses:
		return button
	case <-time.After(time.Second):
		t.Fatal("no press delivered")

		return blink.ButtonNone
	}
}
