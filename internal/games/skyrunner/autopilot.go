package skyrunner

import "math"

// Autopilot flies the craft for headless runs. It dodges the nearest
// hazard ahead, drifts toward power-ups and otherwise holds the middle of
// the playfield, firing whenever the gun is ready. It is a pure function
// of the run state, so autopiloted runs stay deterministic.
type Autopilot struct {
	Lookahead float64 // how far ahead of the nose hazards are considered
	Margin    float64 // vertical clearance kept around a hazard
	Deadband  float64 // distance from the target line that counts as on it
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 240, Margin: 20, Deadband: 6}
}

// hazardous reports whether touching v hurts.
func hazardous(v EntityView) bool {
	switch v.Kind {
	case KindObstacle, KindEnemy:
		return true
	case KindProjectile:
		return v.Sub == 1
	}
	return false
}

// Intents decides the next tick's input.
func (a *Autopilot) Intents(s *Sim) Intents {
	p := s.player
	pcfg := s.cfg.Player
	top := p.Y - a.Margin
	bottom := p.Y + float64(p.H) + a.Margin
	nose := p.X + float64(p.W)
	center := p.Y + float64(p.H)/2

	var (
		threat    *EntityView
		threatGap = math.Inf(1)
		bonus     *EntityView
		bonusGap  = math.Inf(1)
	)
	views := s.Views()
	for i := range views {
		v := &views[i]
		if !v.Active || v.X+float64(v.W) < p.X {
			continue
		}
		gap := v.X - nose
		if gap > a.Lookahead {
			continue
		}
		switch {
		case hazardous(*v):
			if v.Y+float64(v.H) < top || v.Y > bottom {
				continue
			}
			if gap < threatGap {
				threat, threatGap = v, gap
			}
		case v.Kind == KindPowerUp:
			if gap < bonusGap {
				bonus, bonusGap = v, gap
			}
		}
	}

	target := (pcfg.MinY + pcfg.MaxY + float64(p.H)) / 2
	switch {
	case threat != nil:
		mid := threat.Y + float64(threat.H)/2
		above := threat.Y - a.Margin - float64(p.H)
		below := threat.Y + float64(threat.H) + a.Margin
		// Pass on the nearer side unless it runs out of playfield.
		goUp := center < mid
		if goUp && above < pcfg.MinY {
			goUp = false
		}
		if !goUp && below > pcfg.MaxY {
			goUp = above >= pcfg.MinY
		}
		if goUp {
			target = above + float64(p.H)/2
		} else {
			target = below + float64(p.H)/2
		}
	case bonus != nil:
		target = bonus.Y + float64(bonus.H)/2
	}

	in := Intents{Shoot: p.Cooldown == 0}
	switch {
	case center > target+a.Deadband:
		in.Up = true
	case center < target-a.Deadband:
		in.Down = true
	}
	// Hang back while dodging, creep forward otherwise.
	home := pcfg.MinX + (pcfg.MaxX-pcfg.MinX)/4
	switch {
	case threat != nil && p.X > pcfg.MinX:
		in.Left = true
	case threat == nil && p.X < home:
		in.Right = true
	}
	return in
}
