package skyrunner

import "math"

// PowerUpType is the power-up variant.
type PowerUpType int

const (
	PowerUpTurbo PowerUpType = iota
	PowerUpScoreBoost
	PowerUpShield
	PowerUpHealth
)

// String returns the type name.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpTurbo:
		return "turbo"
	case PowerUpScoreBoost:
		return "score_boost"
	case PowerUpShield:
		return "shield"
	case PowerUpHealth:
		return "health"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpTurbo:
		return 'T'
	case PowerUpScoreBoost:
		return '$'
	case PowerUpShield:
		return 'S'
	case PowerUpHealth:
		return '♥'
	default:
		return '?'
	}
}

// PowerUp is a collectible floating in the lane.
type PowerUp struct {
	Body
	Type  PowerUpType
	Frame int // animation frame 0..7
	Glow  float64
	delay int
	glowD float64
}

// NewPowerUp creates a power-up at (x, y).
func NewPowerUp(t PowerUpType, x, y float64) *PowerUp {
	return &PowerUp{
		Body:  Body{X: x, Y: y, W: 30, H: 30, Active: true},
		Type:  t,
		Glow:  0.3,
		glowD: 0.02,
	}
}

// Kind implements Entity.
func (p *PowerUp) Kind() Kind { return KindPowerUp }

// Tick bobs the power-up and scrolls it.
func (p *PowerUp) Tick(scroll float64) {
	p.delay++
	if p.delay >= 3 {
		p.Frame = (p.Frame + 1) % 8
		p.delay = 0
	}
	p.Glow += p.glowD
	if p.Glow >= 1.0 || p.Glow <= 0.3 {
		p.glowD = -p.glowD
	}
	p.Y += math.Sin(float64(p.Frame)*0.5) * 0.5
	p.X -= scroll
}
