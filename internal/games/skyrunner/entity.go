package skyrunner

import (
	"math"

	"github.com/vovakirdan/sky-runner/internal/core"
)

// Kind identifies the concrete entity variant. The set is closed.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindObstacle
	KindProjectile
	KindPowerUp
	KindCloud
	KindFeature
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	case KindProjectile:
		return "projectile"
	case KindPowerUp:
		return "powerup"
	case KindCloud:
		return "cloud"
	case KindFeature:
		return "feature"
	default:
		return "unknown"
	}
}

// Entity is anything that lives in the world and advances each tick.
type Entity interface {
	Kind() Kind
	Tick(scroll float64)
	Bounds() core.Rect
	Alive() bool
}

// Body holds the position, size and liveness shared by all entities.
// Positions are sub-pixel; Bounds floors them.
type Body struct {
	X, Y   float64
	W, H   int
	Active bool
}

// Bounds returns the axis-aligned bounding box.
func (b *Body) Bounds() core.Rect {
	return core.RectAt(b.X, b.Y, b.W, b.H)
}

// Alive reports whether the entity still takes part in the simulation.
func (b *Body) Alive() bool {
	return b.Active
}

// Deactivate marks the entity for removal on the next sweep.
func (b *Body) Deactivate() {
	b.Active = false
}

// Center returns the centre of the bounding box.
func (b *Body) Center() (float64, float64) {
	r := b.Bounds()
	cx, cy := r.Center()
	return float64(cx), float64(cy)
}

// sweep compacts a slice in place, keeping entities that are alive and
// that keep() accepts. Dropped tail slots are zeroed so the GC can reclaim them.
func sweep[T Entity](items []T, keep func(T) bool) []T {
	valid := items[:0]
	for _, it := range items {
		if it.Alive() && keep(it) {
			valid = append(valid, it)
		}
	}
	var zero T
	for i := len(valid); i < len(items); i++ {
		items[i] = zero
	}
	return valid
}

// nonNegative clamps counts and amounts that must not go below zero.
func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// floorInt converts a non-negative per-tick quantity to whole units.
func floorInt(v float64) int {
	return int(math.Floor(v))
}
