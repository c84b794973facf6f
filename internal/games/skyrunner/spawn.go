package skyrunner

import (
	"math"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// latePairOffset is where the second obstacle of a late pair goes when
// the random height lands too close to the first.
const latePairOffset = 80

// spawnCursors track where the last entity of each category entered.
// They fall behind by the scroll each tick; a category may spawn again
// once its cursor is far enough inside the field.
type spawnCursors struct {
	obstacle float64
	enemy    float64
	powerUp  float64
	feature  float64
	cloud    float64
}

// resetCursors puts every cursor at the right edge, so each category
// waits out its full gap before the first spawn of a level.
func (s *Sim) resetCursors() {
	w := float64(s.cfg.Field.Width)
	s.cursors = spawnCursors{obstacle: w, enemy: w, powerUp: w, feature: w, cloud: w}
}

func (c *spawnCursors) scroll(d float64) {
	c.obstacle -= d
	c.enemy -= d
	c.powerUp -= d
	c.feature -= d
	c.cloud -= d
}

// laneY returns a random height for lane entities.
func (s *Sim) laneY() float64 {
	h := float64(s.cfg.Field.Height)
	return math.Floor(s.rng.Float64()*(h-150)) + 50
}

// spawn runs the per-category spawn trials for this tick.
func (s *Sim) spawn() {
	sp := s.cfg.Spawn
	lvl := s.levels.Current()
	completion := lvl.CompletionPercent()
	pressure := s.pace.Pressure(completion)

	w := float64(s.cfg.Field.Width)
	h := float64(s.cfg.Field.Height)
	spawnX := w + sp.SpawnOffset

	if s.cursors.cloud < w-sp.CloudGap && s.rng.Chance(sp.CloudChance) {
		s.clouds = append(s.clouds, NewCloud(spawnX, math.Floor(s.rng.Float64()*h*0.7), 1))
		s.cursors.cloud = spawnX
	}

	if s.world == config.WorldFloatingCity {
		// Buildings come at a constant cadence, no trial.
		if s.cursors.obstacle < w-sp.BuildingGap {
			s.obstacles = append(s.obstacles, s.levels.NewObstacle(spawnX, 0))
			s.cursors.obstacle = spawnX
		}
	} else if s.cursors.obstacle < w-sp.ObstacleGap && s.rng.Chance(lvl.ObstacleRate*pressure) {
		y1 := s.laneY()
		s.obstacles = append(s.obstacles, s.levels.NewObstacle(spawnX, y1))
		if lvl.Number == 1 && s.pace.IsLate(completion) && s.rng.Chance(sp.LatePairChance) {
			y2 := s.laneY()
			if math.Abs(y2-y1) < sp.LatePairMinSeparation {
				y2 = math.Min(h-100, y1+latePairOffset)
			}
			s.obstacles = append(s.obstacles, s.levels.NewObstacle(spawnX, y2))
		}
		s.cursors.obstacle = spawnX
	}

	if s.cursors.enemy < w-sp.EnemyGap &&
		len(s.enemies) < s.pace.EnemyCap(completion) &&
		s.rng.Chance(lvl.EnemyRate*pressure) {
		s.enemies = append(s.enemies, s.levels.NewEnemy(spawnX, s.laneY()))
		s.cursors.enemy = spawnX
	}

	if s.cursors.powerUp < w-sp.PowerUpGap && s.rng.Chance(lvl.PowerUpRate) {
		if pu, ok := s.levels.NewPowerUp(spawnX, s.laneY()); ok {
			s.powerUps = append(s.powerUps, pu)
		}
		s.cursors.powerUp = spawnX
	}

	if s.cursors.feature < w-sp.FeatureGap && s.rng.Chance(sp.FeatureChance) {
		baseY := h - 120 - math.Floor(s.rng.Float64()*100)
		s.features = append(s.features, s.newFeature(spawnX+20, baseY, false))
		s.cursors.feature = spawnX
	}

	s.cursors.scroll(s.scroll)
}

// newFeature creates a landmark themed for the world. Initial landmarks
// sit further back than ones spawned during play.
func (s *Sim) newFeature(x, baseY float64, initial bool) *Feature {
	parallax := 0.4 + s.rng.Float64()*0.3
	if initial {
		parallax = 0.3 + s.rng.Float64()*0.4
	}
	f := &Feature{Parallax: parallax}
	f.Active = true
	f.X = x
	switch s.world {
	case config.WorldCrystalCanyon:
		f.Type = FeatureCrystalSpire
		f.Y, f.W, f.H = baseY-70, 70, 150
	case config.WorldFloatingCity:
		if s.rng.Chance(0.6) {
			f.Type = FeatureCityTower
			f.Y, f.W, f.H = baseY-100, 60+s.rng.Intn(40), 160
		} else {
			f.Type = FeatureCityTurbine
			f.Y, f.W, f.H = baseY-60, 60, 120
		}
	default:
		f.Type = FeatureRockSpire
		f.Y, f.W, f.H = baseY-80, 80, 160
	}
	return f
}

// seedScenery places the clouds and landmarks visible when a run starts.
func (s *Sim) seedScenery() {
	w := float64(s.cfg.Field.Width)
	h := float64(s.cfg.Field.Height)
	for i := 0; i < s.cfg.Spawn.InitialClouds; i++ {
		x := math.Floor(s.rng.Float64() * w * 2)
		y := math.Floor(s.rng.Float64() * h * 0.7)
		s.clouds = append(s.clouds, NewCloud(x, y, 1))
	}
	s.seedFeatures()
}

func (s *Sim) seedFeatures() {
	w := float64(s.cfg.Field.Width)
	h := float64(s.cfg.Field.Height)
	for i := 0; i < s.cfg.Spawn.InitialFeatures; i++ {
		x := math.Floor(s.rng.Float64() * w)
		baseY := h - 100 - math.Floor(s.rng.Float64()*120)
		s.features = append(s.features, s.newFeature(x, baseY, true))
	}
}
