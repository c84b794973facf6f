package skyrunner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-runner/internal/config"
)

// MaxLevels is the longest campaign a world supports.
const MaxLevels = 5

// ErrLevelCount is returned for campaigns outside 1..MaxLevels.
var ErrLevelCount = errors.New("level count out of range")

var levelNames = map[config.World][MaxLevels]string{
	config.WorldCloudKingdom:  {"Kingdom Gate", "Cloud Valley", "Floating Towers", "Stormy Sky", "Celestial Throne"},
	config.WorldCrystalCanyon: {"Crystal Gorge", "Shining Caverns", "Bridges of Light", "Gem Abyss", "Canyon Heart"},
	config.WorldFloatingCity:  {"City Outskirts", "Industrial District", "Turbine Zone", "Control Center", "Floating Core"},
}

// LevelManager owns the ordered levels of a run, the global lives and the
// totals carried over from completed levels. It is also the factory for
// obstacles, enemies and power-ups; it never keeps what it creates.
type LevelManager struct {
	levels []*Level
	index  int

	totalScore     int
	totalEnemies   int
	totalObstacles int

	lives    int
	maxLives int

	world      config.World
	difficulty config.Difficulty
	field      config.FieldConfig
	spawn      config.SpawnConfig
	combat     config.CombatConfig

	rng       *RNG
	logger    *log.Logger
	fallbacks int
}

// NewLevelManager generates count levels for a world and difficulty.
// A count of zero means a single level.
func NewLevelManager(cfg config.SkyRunnerConfig, world config.World, diff config.Difficulty, count int, rng *RNG, logger *log.Logger) (*LevelManager, error) {
	tier, err := cfg.Tiers.For(diff)
	if err != nil {
		return nil, fmt.Errorf("level manager: %w", err)
	}
	names, ok := levelNames[world]
	if !ok {
		return nil, fmt.Errorf("level manager: %w: %q", config.ErrUnknownWorld, string(world))
	}
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxLevels {
		return nil, fmt.Errorf("level manager: %w: %d", ErrLevelCount, count)
	}

	lm := &LevelManager{
		lives:      cfg.Player.Lives,
		maxLives:   cfg.Player.Lives,
		world:      world,
		difficulty: diff,
		field:      cfg.Field,
		spawn:      cfg.Spawn,
		combat:     cfg.Combat,
		rng:        rng,
		logger:     logger,
	}
	for i := 0; i < count; i++ {
		lm.levels = append(lm.levels, NewLevel(names[i], i+1, world, diff, tier, cfg.Scoring))
	}
	return lm, nil
}

// Current returns the level being played.
func (lm *LevelManager) Current() *Level {
	return lm.levels[lm.index]
}

// Index returns the zero-based index of the current level.
func (lm *LevelManager) Index() int {
	return lm.index
}

// Count returns the number of levels in the run.
func (lm *LevelManager) Count() int {
	return len(lm.levels)
}

// Update feeds travelled distance to the current level and reports whether
// it just completed.
func (lm *LevelManager) Update(distance int) bool {
	return lm.Current().UpdateProgress(distance)
}

// Advance moves to the next level, folding the finished one into the
// totals. Returns false when there is no next level.
func (lm *LevelManager) Advance() bool {
	if lm.index >= len(lm.levels)-1 {
		return false
	}
	cur := lm.Current()
	lm.totalScore += cur.Score()
	lm.totalEnemies += cur.EnemiesDefeated
	lm.totalObstacles += cur.ObstaclesPassed
	lm.index++
	return true
}

// GameComplete reports whether the last level has been completed.
func (lm *LevelManager) GameComplete() bool {
	return lm.index == len(lm.levels)-1 && lm.Current().Completed
}

// Lives returns the remaining lives.
func (lm *LevelManager) Lives() int {
	return lm.lives
}

// LoseLife removes one life.
func (lm *LevelManager) LoseLife() {
	if lm.lives > 0 {
		lm.lives--
	}
}

// AddLife grants a life, up to the starting count.
func (lm *LevelManager) AddLife() {
	if lm.lives < lm.maxLives {
		lm.lives++
	}
}

// GameOver reports whether no lives remain.
func (lm *LevelManager) GameOver() bool {
	return lm.lives <= 0
}

// EnemyDefeated records a kill on the current level.
func (lm *LevelManager) EnemyDefeated() {
	lm.Current().EnemiesDefeated++
}

// ObstaclePassed records a dodged obstacle on the current level.
func (lm *LevelManager) ObstaclePassed() {
	lm.Current().ObstaclesPassed++
}

// Fallbacks returns how many weighted draws fell back to the default type.
func (lm *LevelManager) Fallbacks() int {
	return lm.fallbacks
}

func (lm *LevelManager) pick(what string, weights []float64) int {
	idx, ok := SelectWeighted(weights, lm.rng.Float64())
	if !ok {
		lm.fallbacks++
		if lm.logger != nil {
			lm.logger.Warn("weighted selection fell back to default type",
				"kind", what, "weights", weights, "level", lm.Current().Name)
		}
	}
	return idx
}

// NewObstacle creates an obstacle of a weighted random type at (x, y).
// City buildings ignore y and anchor to the floor or the ceiling.
func (lm *LevelManager) NewObstacle(x, y float64) *Obstacle {
	t := ObstacleType(lm.pick("obstacle", lm.Current().ObstacleWeights))
	if t < 0 || t >= obstacleTypeCount {
		t = ObstacleRockTower
	}
	if t == ObstacleCityBuilding {
		return lm.newBuilding(x)
	}
	o := NewObstacle(t, x, y)
	if t == ObstacleElectricStorm && o.Y < lm.spawn.StormMinY {
		o.Y = lm.spawn.StormMinY
	}
	return o
}

func (lm *LevelManager) newBuilding(x float64) *Obstacle {
	fromFloor := lm.rng.Chance(0.5)
	minH := lm.spawn.BuildingMinHeight
	maxH := max(minH, lm.field.Height-lm.spawn.BuildingCeilingClear)
	h := minH + lm.rng.Intn(maxH-minH+1)

	o := NewObstacle(ObstacleCityBuilding, x, 0)
	o.W = lm.spawn.BuildingWidth
	o.H = h
	if fromFloor {
		o.Y = float64(lm.field.Height - h)
	}
	return o
}

// NewEnemy creates an enemy of a weighted random type at (x, y).
func (lm *LevelManager) NewEnemy(x, y float64) *Enemy {
	t := EnemyType(lm.pick("enemy", lm.Current().EnemyWeights))
	if t < 0 || t >= enemyTypeCount {
		t = EnemyBasic
	}
	return NewEnemy(t, x, y, lm.combat.EnemyPatrolRange, lm.combat.EnemyPatrolSpeed, lm.combat.EnemyShootCooldown)
}

// NewPowerUp draws a power-up type from the tier's distribution. ok is
// false when the draw lands in the no-spawn share.
func (lm *LevelManager) NewPowerUp(x, y float64) (*PowerUp, bool) {
	w := lm.Current().PowerUps
	r := lm.rng.Float64()
	for _, c := range []struct {
		t PowerUpType
		w float64
	}{
		{PowerUpScoreBoost, w.ScoreBoost},
		{PowerUpTurbo, w.Turbo},
		{PowerUpShield, w.Shield},
		{PowerUpHealth, w.Health},
	} {
		if r < c.w {
			return NewPowerUp(c.t, x, y), true
		}
		r -= c.w
	}
	return nil, false
}

// ProgressInfo returns a one-line description of the current level.
func (lm *LevelManager) ProgressInfo() string {
	cur := lm.Current()
	return fmt.Sprintf("Level %d: %s (%.1f%%)", lm.index+1, cur.Name, cur.CompletionPercent())
}

// LevelsCompleted counts finished levels, including the current one.
func (lm *LevelManager) LevelsCompleted() int {
	n := lm.index
	if lm.Current().Completed {
		n++
	}
	return n
}

// EnemiesDefeated returns kills across all levels so far.
func (lm *LevelManager) EnemiesDefeated() int {
	return lm.totalEnemies + lm.Current().EnemiesDefeated
}

// ObstaclesPassed returns dodged obstacles across all levels so far.
func (lm *LevelManager) ObstaclesPassed() int {
	return lm.totalObstacles + lm.Current().ObstaclesPassed
}

// FinalScore returns the completed levels' totals plus the current level's score.
func (lm *LevelManager) FinalScore() int {
	return lm.totalScore + lm.Current().Score()
}

// FinalStats returns the multi-line end-of-run summary.
func (lm *LevelManager) FinalStats() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Final Score: %d\n", lm.FinalScore())
	fmt.Fprintf(&sb, "Enemies Defeated: %d\n", lm.EnemiesDefeated())
	fmt.Fprintf(&sb, "Obstacles Dodged: %d\n", lm.ObstaclesPassed())
	fmt.Fprintf(&sb, "Levels Completed: %d/%d\n", lm.LevelsCompleted(), len(lm.levels))
	fmt.Fprintf(&sb, "Difficulty: %s", lm.difficulty.Label())
	return sb.String()
}
