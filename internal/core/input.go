package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games read intents, never raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - climb
	ActionDown           // S, Down arrow - dive
	ActionLeft           // A, Left arrow - brake
	ActionRight          // D, Right arrow - accelerate forward
	ActionShoot          // Space - fire
	ActionConfirm        // Enter - confirm selection / start run
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over or victory
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Mask packs the frame into a bitmask, one bit per action.
// Used by replays to store one small integer per tick.
func (f InputFrame) Mask() uint16 {
	var m uint16
	for a, on := range f.Actions {
		if on && a > ActionNone && a < actionCount {
			m |= 1 << uint(a)
		}
	}
	return m
}

// FrameFromMask unpacks a bitmask produced by Mask.
func FrameFromMask(m uint16) InputFrame {
	f := NewInputFrame()
	for a := ActionNone + 1; a < actionCount; a++ {
		if m&(1<<uint(a)) != 0 {
			f.Set(a)
		}
	}
	return f
}
