package skyrunner

import "math"

// Cloud is background decoration drifting slower than the world.
type Cloud struct {
	Body
	Drift float64 // own leftward speed
}

// NewCloud creates a cloud of the given size class (1 is the usual).
func NewCloud(x, y float64, size int) *Cloud {
	return &Cloud{
		Body:  Body{X: x, Y: y, W: 60 + size*20, H: 30 + size*10, Active: true},
		Drift: float64(size),
	}
}

// Kind implements Entity.
func (c *Cloud) Kind() Kind { return KindCloud }

// Tick drifts the cloud with a gentle bob and a fraction of the scroll.
func (c *Cloud) Tick(scroll float64) {
	c.X -= c.Drift
	c.Y += math.Sin(c.X*0.01) * 0.5
	c.X -= scroll * 0.3
}

// FeatureType is a background landmark variant.
type FeatureType int

const (
	FeatureRockSpire FeatureType = iota
	FeatureCrystalSpire
	FeatureCityTower
	FeatureCityTurbine
)

// Feature is a world-themed landmark moving with parallax.
type Feature struct {
	Body
	Type     FeatureType
	Parallax float64 // 0.2 (far) to 0.8 (near)
}

// Kind implements Entity.
func (f *Feature) Kind() Kind { return KindFeature }

// Tick moves the feature at a fraction of the scroll speed.
func (f *Feature) Tick(scroll float64) {
	f.X -= scroll * f.Parallax
}
