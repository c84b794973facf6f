package skyrunner

import (
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
)

func newTestCraft() *Craft {
	cfg := config.DefaultSkyRunnerConfig()
	return NewCraft(cfg.Player, cfg.Combat)
}

func TestCraftStaysInPlayfield(t *testing.T) {
	c := newTestCraft()

	for range 500 {
		c.Steer(Intents{Right: true, Down: true})
		c.Tick(0)
	}
	if c.X != 690 || c.Y != 510 {
		t.Errorf("expected craft clamped to (690, 510), got (%.1f, %.1f)", c.X, c.Y)
	}

	for range 500 {
		c.Steer(Intents{Left: true, Up: true})
		c.Tick(0)
	}
	if c.X != 50 || c.Y != 50 {
		t.Errorf("expected craft clamped to (50, 50), got (%.1f, %.1f)", c.X, c.Y)
	}
}

func TestCraftSpeedLimits(t *testing.T) {
	c := newTestCraft()
	for range 100 {
		c.Steer(Intents{Right: true, Down: true})
		c.Tick(0)
		if c.VX > 9.0 || c.VY > 9.8 {
			t.Fatalf("velocity above limit: vx=%.2f vy=%.2f", c.VX, c.VY)
		}
	}
}

func TestCraftFrictionStopsAtZero(t *testing.T) {
	c := newTestCraft()
	c.VX = 0.5
	c.VY = -0.5
	c.Tick(0)
	if c.VX != 0 || c.VY != 0 {
		t.Errorf("friction should clamp at zero crossing, got vx=%.2f vy=%.2f", c.VX, c.VY)
	}
}

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(c *Craft)
		amount     int
		wantLife   bool
		wantInvuln int
		wantShield bool
	}{
		{
			name:       "plain hit consumes a life",
			setup:      func(c *Craft) { c.Health = 10 },
			amount:     34,
			wantLife:   true,
			wantInvuln: 60,
		},
		{
			name:       "invulnerable ignores hit",
			setup:      func(c *Craft) { c.SetInvulnerable(30) },
			amount:     34,
			wantLife:   false,
			wantInvuln: 30,
		},
		{
			name:       "shield absorbs hit",
			setup:      func(c *Craft) { c.ActivateShield() },
			amount:     34,
			wantLife:   false,
			wantInvuln: 20,
		},
		{
			name:       "invulnerable keeps shield",
			setup:      func(c *Craft) { c.ActivateShield(); c.SetInvulnerable(5) },
			amount:     34,
			wantLife:   false,
			wantInvuln: 5,
			wantShield: true,
		},
		{
			name:     "zero damage is a no-op",
			amount:   0,
			wantLife: false,
		},
		{
			name:     "negative damage is a no-op",
			amount:   -10,
			wantLife: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCraft()
			if tt.setup != nil {
				tt.setup(c)
			}
			if got := c.ApplyDamage(tt.amount); got != tt.wantLife {
				t.Errorf("ApplyDamage() = %v, want %v", got, tt.wantLife)
			}
			if c.Invuln != tt.wantInvuln {
				t.Errorf("Invuln = %d, want %d", c.Invuln, tt.wantInvuln)
			}
			if c.Shield != tt.wantShield {
				t.Errorf("Shield = %v, want %v", c.Shield, tt.wantShield)
			}
			if c.Health != c.MaxHealth && tt.wantLife {
				t.Errorf("health should reset to max after a life-consuming hit, got %d", c.Health)
			}
		})
	}
}

func TestShieldAbsorbsExactlyOneHit(t *testing.T) {
	c := newTestCraft()
	c.ActivateShield()
	c.ActivateShield() // does not stack

	if c.ApplyDamage(34) {
		t.Fatal("first hit should be absorbed by the shield")
	}
	for range 20 {
		c.Tick(0)
	}
	if c.Invulnerable() {
		t.Fatal("shield invulnerability should have expired")
	}
	if !c.ApplyDamage(34) {
		t.Error("second hit should consume a life")
	}
}

func TestSetInvulnerableNegative(t *testing.T) {
	c := newTestCraft()
	c.SetInvulnerable(-5)
	if c.Invuln != 0 || c.Invulnerable() {
		t.Errorf("negative frames should clamp to 0, got %d", c.Invuln)
	}
}

func TestApplySlowExpires(t *testing.T) {
	c := newTestCraft()
	c.ApplySlow(0.35, 20)
	if !c.Slowed() || c.SlowFactor != 0.35 {
		t.Fatalf("expected slow 0.35, got slowed=%v factor=%.2f", c.Slowed(), c.SlowFactor)
	}

	c.VX = 4
	c.Tick(0)
	want := (4 - 0.95) * 0.35
	if diff := c.VX - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("slowed velocity = %.4f, want %.4f", c.VX, want)
	}

	for range 19 {
		c.Tick(0)
	}
	if c.Slowed() || c.SlowFactor != 1.0 {
		t.Errorf("slow should expire after 20 ticks, got frames=%d factor=%.2f", c.SlowFrames, c.SlowFactor)
	}

	c.ApplySlow(0.5, -3)
	if c.Slowed() {
		t.Error("negative duration should not slow the craft")
	}
}

func TestTurboWindow(t *testing.T) {
	c := newTestCraft()
	c.ActivateTurbo()
	for range 179 {
		c.Tick(0)
	}
	if !c.TurboActive() {
		t.Fatal("turbo should still be active after 179 ticks")
	}
	c.Tick(0)
	if c.TurboActive() {
		t.Error("turbo should end after 180 ticks")
	}
}

func TestTryShootCooldown(t *testing.T) {
	c := newTestCraft()
	if !c.TryShoot() {
		t.Fatal("first shot should fire")
	}
	if c.TryShoot() {
		t.Fatal("second shot should be blocked by cooldown")
	}
	for range 15 {
		c.Tick(0)
	}
	if !c.TryShoot() {
		t.Error("shot should fire once the cooldown elapsed")
	}
}
