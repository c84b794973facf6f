package skyrunner

import (
	"math"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// Projectile is a shot fired by the player or an enemy.
type Projectile struct {
	Body
	Hostile bool    // fired by an enemy
	Speed   float64 // base horizontal speed, negative for enemy shots

	boost float64 // player shots: extra speed independent of scroll
	drag  float64 // enemy shots: subtracted from scroll before it is applied
}

// NewPlayerShot creates a shot travelling right at speed+boost px/tick
// regardless of scroll.
func NewPlayerShot(x, y, speed, boost float64) *Projectile {
	return &Projectile{
		Body:  Body{X: x, Y: y, W: 8, H: 4, Active: true},
		Speed: speed,
		boost: boost,
	}
}

// NewEnemyShot creates a shot travelling left at speed - (scroll - drag).
func NewEnemyShot(x, y, speed, drag float64) *Projectile {
	return &Projectile{
		Body:    Body{X: x, Y: y, W: 8, H: 4, Active: true},
		Hostile: true,
		Speed:   speed,
		drag:    drag,
	}
}

// Kind implements Entity.
func (p *Projectile) Kind() Kind { return KindProjectile }

// Bounds is square so thin shots still register.
func (p *Projectile) Bounds() core.Rect {
	return core.RectAt(p.X, p.Y, p.W, p.W)
}

// Tick moves the shot and applies the vertical wobble.
func (p *Projectile) Tick(scroll float64) {
	p.X += p.Speed
	p.Y += math.Sin(p.X*0.1) * 0.5
	if p.Hostile {
		p.X -= scroll - p.drag
	} else {
		p.X += p.boost
	}
}
