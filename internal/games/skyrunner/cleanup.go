package skyrunner

// cleanup sweeps inactive and off-screen entities from every collection.
func (s *Sim) cleanup() {
	w := float64(s.cfg.Field.Width)
	pad := s.cfg.Spawn.ProjectileOffscreenPad

	s.clouds = sweep(s.clouds, func(c *Cloud) bool { return c.X >= -200 })
	s.features = sweep(s.features, func(f *Feature) bool { return f.X+float64(f.W) >= -50 })
	s.obstacles = sweep(s.obstacles, func(o *Obstacle) bool { return o.X >= -200 })
	s.enemies = sweep(s.enemies, func(e *Enemy) bool { return e.X >= -200 && e.Health > 0 })
	s.projectiles = sweep(s.projectiles, func(p *Projectile) bool { return p.X >= -pad && p.X <= w+pad })
	s.powerUps = sweep(s.powerUps, func(p *PowerUp) bool { return p.X >= -100 })
}

// scoreTick adds the distance score and the dodge bonus. An obstacle is
// dodged once: it is deactivated as soon as it is counted.
func (s *Sim) scoreTick() {
	sc := s.cfg.Scoring
	s.score += floorInt(s.scroll * sc.DistanceFactor)

	for _, o := range s.obstacles {
		if o.Active && o.X < sc.DodgeLine {
			s.score += sc.DodgeBonus
			s.levels.ObstaclePassed()
			o.Deactivate()
		}
	}
}
