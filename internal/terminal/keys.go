package terminal

// Key is one of the keys the terminal interprets. Every other key edits the buffer and is
// handled by the front end.
type Key int

const (
	// KeyEnter submits the buffer.
	KeyEnter Key = iota
	// KeyUp recalls the previous history entry.
	KeyUp
	// KeyDown recalls the next history entry, or the draft past the end.
	KeyDown
	// KeyTab completes the command name.
	KeyTab
	// KeyCtrlC abandons the buffer.
	KeyCtrlC
	// KeyCtrlL clears the transcript.
	KeyCtrlL
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyTab:
		return "tab"
	case KeyCtrlC:
		return "ctrl+c"
	case KeyCtrlL:
		return "ctrl+l"
	default:
		return "unknown"
	}
}

// State is the input state machine's state.
type State int

const (
	// StateIdle accepts submissions.
	StateIdle State = iota
	// StateSubmitting drops submissions until the cooldown after the last one has passed.
	StateSubmitting
)

func (s State) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}
