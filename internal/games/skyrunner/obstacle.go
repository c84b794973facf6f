package skyrunner

import "github.com/vovakirdan/sky-runner/internal/core"

// ObstacleType is the obstacle variant. Ordinals index level weight vectors.
type ObstacleType int

const (
	ObstacleRockTower ObstacleType = iota
	ObstacleElectricStorm
	ObstacleTurbine
	ObstacleCloudTower
	ObstacleCrystalSpike
	ObstacleFloatingPlatform
	ObstacleCityBuilding
	obstacleTypeCount
)

// String returns the type name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleRockTower:
		return "rock_tower"
	case ObstacleElectricStorm:
		return "electric_storm"
	case ObstacleTurbine:
		return "turbine"
	case ObstacleCloudTower:
		return "cloud_tower"
	case ObstacleCrystalSpike:
		return "crystal_spike"
	case ObstacleFloatingPlatform:
		return "floating_platform"
	case ObstacleCityBuilding:
		return "city_building"
	default:
		return "?"
	}
}

// size returns the default width and height for the type.
func (t ObstacleType) size() (int, int) {
	switch t {
	case ObstacleRockTower:
		return 50, 100
	case ObstacleElectricStorm:
		return 80, 80
	case ObstacleTurbine:
		return 40, 60
	case ObstacleCityBuilding:
		return 70, 180
	default:
		return 60, 80
	}
}

// harmful reports whether touching the type costs the player.
func (t ObstacleType) harmful() bool {
	return true
}

// pushes reports whether contact shoves the player forward.
func (t ObstacleType) pushes() bool {
	return t == ObstacleTurbine || t == ObstacleFloatingPlatform
}

// Obstacle is a static hazard scrolling with the world.
type Obstacle struct {
	Body
	Type    ObstacleType
	Harmful bool
	Frame   int // animation frame 0..7
	delay   int
}

// NewObstacle creates an obstacle of the default size for its type.
func NewObstacle(t ObstacleType, x, y float64) *Obstacle {
	w, h := t.size()
	return &Obstacle{
		Body:    Body{X: x, Y: y, W: w, H: h, Active: true},
		Type:    t,
		Harmful: t.harmful(),
	}
}

// Kind implements Entity.
func (o *Obstacle) Kind() Kind { return KindObstacle }

// Tick animates and scrolls the obstacle.
func (o *Obstacle) Tick(scroll float64) {
	o.delay++
	if o.delay >= 5 {
		o.Frame = (o.Frame + 1) % 8
		o.delay = 0
	}
	o.X -= scroll
}

// LightningColumn returns the strike area under an electric storm: a
// column of the given width centred on the storm, from its bottom edge to
// the floor. ok is false for every other type.
func (o *Obstacle) LightningColumn(width, floor int) (core.Rect, bool) {
	if o.Type != ObstacleElectricStorm {
		return core.Rect{}, false
	}
	b := o.Bounds()
	top := b.Bottom()
	if top >= floor {
		return core.Rect{}, false
	}
	cx, _ := b.Center()
	return core.NewRect(cx-width/2, top, width, floor-top), true
}

// ApplyEffect runs the obstacle's contact effect on the craft.
func (o *Obstacle) ApplyEffect(c *Craft, push float64) {
	if o.Type.pushes() {
		c.Push(push)
	}
}

// Destructible reports whether a hit destroys the obstacle.
func (o *Obstacle) Destructible() bool {
	return o.Type == ObstacleRockTower
}
