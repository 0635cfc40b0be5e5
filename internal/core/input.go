package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - start from menu or game over
	ActionPause          // P, Escape - pause/resume
	ActionRestart        // R - restart from any state
	ActionBack           // B - stop and return to menu
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Directions is the discrete 4-way movement signal.
type Directions struct {
	Up, Down, Left, Right bool
}

// Vector converts held directions into a direction vector.
// Opposing directions resolve the same way the keyboard handler always has:
// right wins over left and down wins over up.
func (d Directions) Vector() Vec2 {
	var v Vec2
	if d.Left {
		v.X = -1
	}
	if d.Right {
		v.X = 1
	}
	if d.Up {
		v.Y = -1
	}
	if d.Down {
		v.Y = 1
	}
	return v
}

// Any reports whether any direction is held.
func (d Directions) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}

// InputFrame represents the input state for one frame callback.
type InputFrame struct {
	// Actions maps one-shot actions to whether they were triggered this frame.
	Actions map[Action]bool

	// Move is the held direction set.
	Move Directions

	// Aim is the pointer/touch target in canvas pixels, valid while Aiming.
	// Continuous aim takes precedence over Move.
	Aim    Vec2
	Aiming bool

	// Time is the frame clock timestamp in milliseconds.
	Time float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the one-shot actions for the next frame.
// Held directions and aim are owned by the platform and survive.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
