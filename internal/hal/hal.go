package hal

import (
	"context"

	"github.com/oshokin/blink-button/internal/domain/blink"
)

// LED drives a single output pin. Implementations start with the LED off.
type LED interface {
	// Toggle inverts the logical level of the output.
	Toggle() error
	// Off forces the output low.
	Off() error
}

// ButtonHandler receives debounced, falling-edge button notifications.
// The context carries the execution mode of the delivery path, so it
// must not be retained beyond the call. Handlers must not block.
type ButtonHandler func(ctx context.Context, button blink.Button)

// Board couples the LED driver with the button event source.
type Board interface {
	// LED returns the board's LED output driver.
	LED() LED
	// Watch begins delivering button events to the handler. It returns
	// once the watch is armed; events arrive asynchronously until the
	// context is canceled or the board is closed.
	Watch(ctx context.Context, handler ButtonHandler) error
	// Close releases all claimed lines. The LED is left off.
	Close() error
}
