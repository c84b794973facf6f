package skyrunner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
)

// Intents are the movement and fire requests for one tick.
type Intents struct {
	Up, Down, Left, Right bool
	Shoot                 bool
}

// Craft is the player's aircraft.
//
// Lives is a mirror of the LevelManager's count and only written by the
// simulation; Health is reset to max after every life-consuming hit.
type Craft struct {
	Body
	VX, VY float64

	Health    int
	MaxHealth int
	Lives     int

	Invuln      int // frames of invulnerability left
	Shield      bool
	Turbo       int // frames of turbo left
	SlowFrames  int
	SlowFactor  float64
	Cooldown    int // frames until the next shot
	Frame       int // animation frame 0..3
	frameDelay  int
	Tilt        float64 // visual pitch, eases toward the steering direction
	targetTilt  float64
	hitInvuln   int
	shieldInvul int

	cfg config.PlayerConfig
}

// NewCraft creates the craft at its configured start position.
func NewCraft(pc config.PlayerConfig, combat config.CombatConfig) *Craft {
	return &Craft{
		Body: Body{
			X:      pc.StartX,
			Y:      pc.StartY,
			W:      pc.Width,
			H:      pc.Height,
			Active: true,
		},
		Health:      pc.MaxHealth,
		MaxHealth:   pc.MaxHealth,
		Lives:       pc.Lives,
		SlowFactor:  1.0,
		hitInvuln:   combat.HitInvulnFrames,
		shieldInvul: combat.ShieldInvulnFrames,
		cfg:         pc,
	}
}

// Kind implements Entity.
func (c *Craft) Kind() Kind { return KindPlayer }

// Steer applies one tick of acceleration for the held directions.
func (c *Craft) Steer(in Intents) {
	c.targetTilt = 0
	if in.Up {
		c.VY -= c.cfg.VerticalAcceleration
		c.targetTilt = -0.2
	}
	if in.Down {
		c.VY += c.cfg.VerticalAcceleration
		c.targetTilt = 0.2
	}
	if in.Left {
		c.VX -= c.cfg.Acceleration
	}
	if in.Right {
		c.VX += c.cfg.Acceleration
	}
}

// Tick advances motion and timers: friction, speed clamp, slow effect,
// integration, playfield clamp, then the countdowns.
func (c *Craft) Tick(_ float64) {
	c.VX = towardZero(c.VX, c.cfg.Friction)
	c.VY = towardZero(c.VY, c.cfg.Friction)

	c.VX = core.ClampF(c.VX, -c.cfg.MaxSpeed, c.cfg.MaxSpeed)
	c.VY = core.ClampF(c.VY, -c.cfg.MaxVerticalSpeed, c.cfg.MaxVerticalSpeed)

	if c.SlowFrames > 0 {
		c.VX *= c.SlowFactor
		c.VY *= c.SlowFactor
		c.SlowFrames--
		if c.SlowFrames == 0 {
			c.SlowFactor = 1.0
		}
	}

	c.X += c.VX
	c.Y += c.VY
	c.clampToPlayfield()

	c.Tilt += (c.targetTilt - c.Tilt) * 0.1

	if c.Turbo > 0 {
		c.Turbo--
	}
	if c.Invuln > 0 {
		c.Invuln--
	}
	if c.Cooldown > 0 {
		c.Cooldown--
	}

	c.frameDelay++
	if c.frameDelay >= 3 {
		c.Frame = (c.Frame + 1) % 4
		c.frameDelay = 0
	}
}

func (c *Craft) clampToPlayfield() {
	c.X = core.ClampF(c.X, c.cfg.MinX, c.cfg.MaxX)
	c.Y = core.ClampF(c.Y, c.cfg.MinY, c.cfg.MaxY)
}

// TryShoot starts the shot cooldown and returns true when a shot may be fired.
func (c *Craft) TryShoot() bool {
	if c.Cooldown > 0 {
		return false
	}
	c.Cooldown = c.cfg.ShootCooldown
	return true
}

// Muzzle returns where new shots appear: the nose of the craft.
func (c *Craft) Muzzle() (float64, float64) {
	return c.X + float64(c.W), c.Y + float64(c.H/2)
}

// ApplyDamage resolves a damaging contact and reports whether it consumed
// a life. An invulnerable craft ignores it; a shield absorbs it for a short
// invulnerability window; otherwise health resets to max and the long
// invulnerability window starts. The caller decrements lives.
func (c *Craft) ApplyDamage(amount int) bool {
	if nonNegative(amount) == 0 || c.Invulnerable() {
		return false
	}
	if c.Shield {
		c.Shield = false
		c.SetInvulnerable(c.shieldInvul)
		return false
	}
	c.Health = c.MaxHealth
	c.SetInvulnerable(c.hitInvuln)
	return true
}

// Invulnerable reports whether damage is currently ignored.
func (c *Craft) Invulnerable() bool {
	return c.Invuln > 0
}

// SetInvulnerable starts an invulnerability window. Negative frame counts
// are treated as zero.
func (c *Craft) SetInvulnerable(frames int) {
	c.Invuln = nonNegative(frames)
}

// ActivateShield raises the shield. Shields do not stack.
func (c *Craft) ActivateShield() {
	c.Shield = true
}

// ActivateTurbo starts (or restarts) the turbo window.
func (c *Craft) ActivateTurbo() {
	c.Turbo = c.cfg.TurboFrames
}

// TurboActive reports whether turbo is running.
func (c *Craft) TurboActive() bool {
	return c.Turbo > 0
}

// ApplySlow damps velocity by factor for the given number of ticks.
func (c *Craft) ApplySlow(factor float64, frames int) {
	frames = nonNegative(frames)
	if frames == 0 {
		return
	}
	c.SlowFactor = core.ClampF(factor, 0, 1)
	c.SlowFrames = frames
}

// Slowed reports whether a slow effect is active.
func (c *Craft) Slowed() bool {
	return c.SlowFrames > 0
}

// HealToFull restores health to max.
func (c *Craft) HealToFull() {
	c.Health = c.MaxHealth
}

// Push shifts the craft horizontally, staying inside the playfield.
func (c *Craft) Push(dx float64) {
	c.X += dx
	c.clampToPlayfield()
}

func towardZero(v, f float64) float64 {
	switch {
	case v > 0:
		return max(0, v-f)
	case v < 0:
		return min(0, v+f)
	}
	return 0
}
