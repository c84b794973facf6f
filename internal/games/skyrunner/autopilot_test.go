package skyrunner

import (
	"testing"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// emptySky removes everything but scenery so a test can place entities.
func emptySky(s *Sim) {
	s.obstacles = nil
	s.enemies = nil
	s.projectiles = nil
	s.powerUps = nil
}

func TestAutopilotSteering(t *testing.T) {
	tests := []struct {
		name  string
		place func(s *Sim)
		check func(in Intents) bool
	}{
		{
			name: "dodges over an enemy below center",
			place: func(s *Sim) {
				p := s.player
				s.enemies = append(s.enemies, NewEnemy(EnemyBasic, p.X+float64(p.W)+100, p.Y+15, 0, 0, 1000))
			},
			check: func(in Intents) bool { return in.Up && !in.Down && in.Left },
		},
		{
			name: "dodges under an enemy above center",
			place: func(s *Sim) {
				p := s.player
				s.enemies = append(s.enemies, NewEnemy(EnemyBasic, p.X+float64(p.W)+100, p.Y-15, 0, 0, 1000))
			},
			check: func(in Intents) bool { return in.Down && !in.Up },
		},
		{
			name: "ignores hazards outside the lookahead",
			place: func(s *Sim) {
				p := s.player
				s.enemies = append(s.enemies, NewEnemy(EnemyBasic, p.X+900, p.Y, 0, 0, 1000))
			},
			check: func(in Intents) bool { return !in.Left },
		},
		{
			name: "collects a power-up above",
			place: func(s *Sim) {
				p := s.player
				s.powerUps = append(s.powerUps, NewPowerUp(PowerUpShield, p.X+150, p.Y-120))
			},
			check: func(in Intents) bool { return in.Up },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, config.WorldCloudKingdom, config.DifficultyNormal, 1)
			emptySky(s)
			s.player.X, s.player.Y = 100, 280
			tt.place(s)

			in := NewAutopilot().Intents(s)
			if !tt.check(in) {
				t.Errorf("Intents() = %+v", in)
			}
		})
	}
}

func TestAutopilotHoldsCenterAndFires(t *testing.T) {
	s := newTestSim(t, config.WorldCrystalCanyon, config.DifficultyEasy, 1)
	emptySky(s)
	s.player.X = s.cfg.Player.MinX
	s.player.Y = s.cfg.Player.MinY
	s.player.Cooldown = 0

	in := NewAutopilot().Intents(s)
	if !in.Down || !in.Right || !in.Shoot {
		t.Errorf("Intents() = %+v, want down, right and shoot", in)
	}

	s.player.Cooldown = 3
	if NewAutopilot().Intents(s).Shoot {
		t.Error("should not fire while the gun is cooling down")
	}
}

func TestAutopilotRunsAreDeterministic(t *testing.T) {
	run := func() (uint64, int) {
		s := newTestSim(t, config.WorldFloatingCity, config.DifficultyNormal, 2)
		ap := NewAutopilot()
		for range 3000 {
			s.Tick(ap.Intents(s))
		}
		snap := s.Snapshot()
		return snap.Hash(), s.Score()
	}
	h1, score1 := run()
	h2, score2 := run()
	if h1 != h2 || score1 != score2 {
		t.Errorf("autopilot runs diverged: %x/%d vs %x/%d", h1, score1, h2, score2)
	}
}
