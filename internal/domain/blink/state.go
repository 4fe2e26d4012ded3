package blink

// State represents whether the LED blink timer is currently running.
type State int

const (
	// Stopped means no toggle callbacks are scheduled. This is the
	// power-on state.
	Stopped State = iota
	// Running means the blink timer fires the toggle callback periodically.
	Running
)

// String returns a human-readable state name for logs and test failures.
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Button identifies a physical input the user can press.
type Button int

const (
	// ButtonNone is the zero value and matches no physical input.
	ButtonNone Button = iota
	// ButtonStart requests that LED toggling begin.
	ButtonStart
	// ButtonStop requests that LED toggling cease.
	ButtonStop
)

// String returns a human-readable button name.
func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "start"
	case ButtonStop:
		return "stop"
	default:
		return "none"
	}
}
