package skyrunner

import (
	"github.com/vovakirdan/sky-runner/internal/core"
)

// contactDamage is the nominal damage of any hazard contact. Every hit
// is resolved by the craft's life-per-hit rule, so the amount only has to
// be positive.
const contactDamage = 34

// resolveCollisions runs the collision passes in their fixed order.
// Entities are only marked inactive here; removal happens in cleanup.
func (s *Sim) resolveCollisions() {
	s.collideLightning()
	s.collideObstacles()
	s.collideEnemies()
	s.collideEnemyShots()
	s.collidePlayerShots()
	s.collidePowerUps()
}

// hurtPlayer applies one damaging contact. It reports whether the contact
// registered, i.e. the craft was not invulnerable.
func (s *Sim) hurtPlayer(x, y float64) bool {
	if s.player.Invulnerable() {
		return false
	}
	if s.player.ApplyDamage(contactDamage) {
		s.levels.LoseLife()
		s.player.Lives = s.levels.Lives()
		s.emit(core.EventLifeLost, s.player.X, s.player.Y)
	}
	s.emit(core.EventExplosion, x, y)
	return true
}

func (s *Sim) collideLightning() {
	pb := s.player.Bounds()
	for _, o := range s.obstacles {
		if !o.Active {
			continue
		}
		col, ok := o.LightningColumn(s.cfg.Combat.LightningWidth, s.cfg.Field.Height)
		if ok && col.Intersects(pb) {
			s.hurtPlayer(s.player.X, s.player.Y)
		}
	}
}

func (s *Sim) collideObstacles() {
	for _, o := range s.obstacles {
		if !o.Active || !o.Harmful || !o.Bounds().Intersects(s.player.Bounds()) {
			continue
		}
		if !s.hurtPlayer(o.X, o.Y) {
			continue
		}
		o.ApplyEffect(s.player, s.cfg.Combat.ObstaclePush)
		if o.Destructible() {
			o.Deactivate()
			s.score += s.cfg.Scoring.RockTowerBonus
		}
	}
}

func (s *Sim) collideEnemies() {
	pb := s.player.Bounds()
	for _, e := range s.enemies {
		if e.Active && e.Bounds().Intersects(pb) {
			s.hurtPlayer(e.X, e.Y)
		}
	}
}

func (s *Sim) collideEnemyShots() {
	pb := s.player.Bounds()
	for _, p := range s.projectiles {
		if !p.Active || !p.Hostile || !p.Bounds().Intersects(pb) {
			continue
		}
		if s.hurtPlayer(p.X, p.Y) {
			p.Deactivate()
		}
	}
}

func (s *Sim) collidePlayerShots() {
	for _, p := range s.projectiles {
		if !p.Active || p.Hostile {
			continue
		}
		pb := p.Bounds()
		for _, e := range s.enemies {
			if !e.Active || !e.Bounds().Intersects(pb) {
				continue
			}
			p.Deactivate()
			if e.TakeDamage(s.cfg.Combat.PlayerShotDamage) {
				s.score += s.cfg.Scoring.EnemyKill
				s.levels.EnemyDefeated()
				s.emit(core.EventExplosion, e.X, e.Y)
			}
			break
		}
	}
}

func (s *Sim) collidePowerUps() {
	pb := s.player.Bounds()
	for _, pu := range s.powerUps {
		if !pu.Active || !pu.Bounds().Intersects(pb) {
			continue
		}
		switch pu.Type {
		case PowerUpTurbo:
			s.player.ActivateTurbo()
		case PowerUpShield:
			s.player.ActivateShield()
		case PowerUpHealth:
			s.levels.AddLife()
			s.player.Lives = s.levels.Lives()
			s.player.HealToFull()
		case PowerUpScoreBoost:
			// the pickup bonus below is the whole effect
		}
		s.score += s.cfg.Scoring.PowerUpPickup
		pu.Deactivate()
		s.emit(core.EventPowerUp, pu.X, pu.Y)
	}
}
