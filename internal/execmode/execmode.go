package execmode

import "context"

// Mode describes the execution context a handler was invoked in.
type Mode int

const (
	// Thread is the normal, non-preempted execution path (the program's
	// main control loop and anything dispatched from it). It is the
	// default when the context carries no mode.
	Thread Mode = iota
	// Interrupt marks delivery from an event goroutine standing in for
	// hardware interrupt context (GPIO edge events, timer ticks).
	Interrupt
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	if m == Interrupt {
		return "interrupt"
	}

	return "thread/main"
}

// ctxKey is the context key type for the execution mode.
type ctxKey struct{}

// NewContext returns a context tagged with the given execution mode.
// Delivery paths tag their contexts once, at the boundary where events
// enter the control logic.
func NewContext(ctx context.Context, m Mode) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext reports the execution mode carried by the context,
// defaulting to Thread when none is set.
func FromContext(ctx context.Context) Mode {
	if m, ok := ctx.Value(ctxKey{}).(Mode); ok {
		return m
	}

	return Thread
}
