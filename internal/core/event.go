package core

// EventKind identifies something that happened during a tick that
// collaborators outside the simulation (audio, HUD flashes) may react to.
type EventKind int

const (
	EventShoot EventKind = iota
	EventExplosion
	EventPowerUp
	EventLifeLost
	EventLevelComplete
	EventGameOver
	EventVictory
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "shoot"
	case EventExplosion:
		return "explosion"
	case EventPowerUp:
		return "powerup"
	case EventLifeLost:
		return "life_lost"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is a single notification emitted by a game step.
// X and Y carry the world position where it happened, when meaningful.
type Event struct {
	Kind EventKind
	Tick uint64
	X, Y float64
}
