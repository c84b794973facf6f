package skyrunner

import "math"

// Snapshot is a flat copy of the run state, used for replay verification
// and determinism checks. Positions are kept as raw float bits so two
// snapshots compare equal only when the runs are bit-identical.
type Snapshot struct {
	Tick       uint64
	Phase      int
	Score      int
	Lives      int
	LevelIndex int
	Progress   int
	Distance   uint64
	Scroll     uint64

	// Player: X, Y, VX, VY bits followed by Invuln, Turbo, SlowFrames,
	// Cooldown and Shield (0/1).
	PlayerData []uint64

	// Each entity is 4 words: Kind<<8|subtype, X bits, Y bits, Active.
	EntityCount int
	EntityData  []uint64

	RNGState uint64
}

// Snapshot returns the current run state.
func (s *Sim) Snapshot() Snapshot {
	p := s.player
	shield := uint64(0)
	if p.Shield {
		shield = 1
	}
	snap := Snapshot{
		Tick:       s.tick,
		Phase:      int(s.phase),
		Score:      s.score,
		Lives:      s.levels.Lives(),
		LevelIndex: s.levels.Index(),
		Progress:   s.levels.Current().Progress,
		Distance:   math.Float64bits(s.distance),
		Scroll:     math.Float64bits(s.scroll),
		PlayerData: []uint64{
			math.Float64bits(p.X), math.Float64bits(p.Y),
			math.Float64bits(p.VX), math.Float64bits(p.VY),
			uint64(p.Invuln), uint64(p.Turbo), uint64(p.SlowFrames), //#nosec G115 -- timers are never negative
			uint64(p.Cooldown), shield, //#nosec G115 -- timers are never negative
		},
		RNGState: s.rng.State(),
	}

	for _, v := range s.Views() {
		if v.Kind == KindPlayer {
			continue
		}
		active := uint64(0)
		if v.Active {
			active = 1
		}
		snap.EntityData = append(snap.EntityData,
			uint64(v.Kind)<<8|uint64(v.Sub), //#nosec G115 -- small enum values
			math.Float64bits(v.X), math.Float64bits(v.Y), active)
		snap.EntityCount++
	}
	return snap
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Progress)   //#nosec G115 -- hash computation
	h = h*31 + snap.Distance
	h = h*31 + snap.Scroll
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation

	for _, v := range snap.PlayerData {
		h = h*31 + v
	}
	for _, v := range snap.EntityData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState
	return h
}

// EntityView is a read-only description of one entity for renderers.
type EntityView struct {
	Kind   Kind
	Sub    int // obstacle, enemy, power-up or feature type
	X, Y   float64
	W, H   int
	Active bool
	Frame  int
}

// Views returns every entity in draw order: scenery first, the player last.
func (s *Sim) Views() []EntityView {
	n := len(s.clouds) + len(s.features) + len(s.obstacles) + len(s.enemies) +
		len(s.powerUps) + len(s.projectiles) + 1
	out := make([]EntityView, 0, n)

	view := func(k Kind, sub int, b *Body, frame int) EntityView {
		return EntityView{Kind: k, Sub: sub, X: b.X, Y: b.Y, W: b.W, H: b.H, Active: b.Active, Frame: frame}
	}
	for _, c := range s.clouds {
		out = append(out, view(KindCloud, 0, &c.Body, 0))
	}
	for _, f := range s.features {
		out = append(out, view(KindFeature, int(f.Type), &f.Body, 0))
	}
	for _, o := range s.obstacles {
		out = append(out, view(KindObstacle, int(o.Type), &o.Body, o.Frame))
	}
	for _, e := range s.enemies {
		out = append(out, view(KindEnemy, int(e.Type), &e.Body, 0))
	}
	for _, p := range s.powerUps {
		out = append(out, view(KindPowerUp, int(p.Type), &p.Body, p.Frame))
	}
	for _, p := range s.projectiles {
		sub := 0
		if p.Hostile {
			sub = 1
		}
		out = append(out, view(KindProjectile, sub, &p.Body, 0))
	}
	out = append(out, view(KindPlayer, 0, &s.player.Body, s.player.Frame))
	return out
}

// Counts returns the number of live entities per kind, player excluded.
func (s *Sim) Counts() map[Kind]int {
	return map[Kind]int{
		KindObstacle:   len(s.obstacles),
		KindEnemy:      len(s.enemies),
		KindProjectile: len(s.projectiles),
		KindPowerUp:    len(s.powerUps),
		KindCloud:      len(s.clouds),
		KindFeature:    len(s.features),
	}
}
