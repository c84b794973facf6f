package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "f":
		return core.ActionShoot, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// DefaultHold is how many ticks a steering key stays pressed. Terminals
// report key repeats rather than key state, and the first repeat arrives
// well after the next tick.
const DefaultHold = 10

// InputLatch turns discrete key presses into held steering input.
// Steering and shooting stay active for a few ticks after each press;
// everything else lasts exactly one tick.
type InputLatch struct {
	hold int
	held map[core.Action]int
	once core.InputFrame
}

// NewInputLatch creates a latch. A non-positive hold uses DefaultHold.
func NewInputLatch(hold int) *InputLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &InputLatch{
		hold: hold,
		held: make(map[core.Action]int),
		once: core.NewInputFrame(),
	}
}

// opposite returns the steering action that cancels a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key action.
func (l *InputLatch) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionShoot:
		delete(l.held, opposite(a))
		l.held[a] = l.hold
		if a == core.ActionShoot {
			l.once.Set(a)
		}
	default:
		l.once.Set(a)
	}
}

// Frame returns the input for the next tick and ages held keys.
func (l *InputLatch) Frame() core.InputFrame {
	f := l.once.Clone()
	for a, n := range l.held {
		f.Set(a)
		if n <= 1 {
			delete(l.held, a)
		} else {
			l.held[a] = n - 1
		}
	}
	l.once.Clear()
	return f
}

// Release drops every held key, for pauses and restarts.
func (l *InputLatch) Release() {
	clear(l.held)
	l.once.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
