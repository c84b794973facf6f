package skyrunner

import (
	"github.com/vovakirdan/sky-runner/internal/config"
)

// Level is one stage of a run: its tuning and its progress counters.
type Level struct {
	Name       string
	World      config.World
	Difficulty config.Difficulty
	Number     int // 1-based

	Length          int
	TargetScore     int
	CompletionBonus int
	ScrollSpeed     float64

	ObstacleRate   float64
	EnemyRate      float64
	PowerUpRate    float64
	TurboRate      float64 // tier data only; the power-up type comes from PowerUps
	ScoreBoostRate float64 // tier data only, as TurboRate
	MaxEnemies     int

	ObstacleWeights []float64 // indexed by ObstacleType
	EnemyWeights    []float64 // indexed by EnemyType
	PowerUps        config.PowerUpWeights

	Progress        int
	EnemiesDefeated int
	ObstaclesPassed int
	Completed       bool

	scoring config.ScoringConfig
}

// NewLevel builds a level from a difficulty tier and the world's weight tables.
func NewLevel(name string, number int, world config.World, diff config.Difficulty, tier config.TierConfig, scoring config.ScoringConfig) *Level {
	obstacles, enemies := worldWeights(world)
	return &Level{
		Name:            name,
		World:           world,
		Difficulty:      diff,
		Number:          number,
		Length:          tier.Length,
		TargetScore:     tier.TargetScore,
		CompletionBonus: tier.CompletionBonus,
		ScrollSpeed:     tier.ScrollSpeed,
		ObstacleRate:    tier.ObstacleRate,
		EnemyRate:       tier.EnemyRate,
		PowerUpRate:     tier.PowerUpRate,
		TurboRate:       tier.TurboRate,
		ScoreBoostRate:  tier.ScoreBoostRate,
		MaxEnemies:      tier.MaxEnemies,
		ObstacleWeights: obstacles,
		EnemyWeights:    enemies,
		PowerUps:        tier.PowerUps,
		scoring:         scoring,
	}
}

// worldWeights returns copies of the obstacle and enemy type weights for a world.
func worldWeights(w config.World) (obstacles, enemies []float64) {
	switch w {
	case config.WorldCrystalCanyon:
		return []float64{0.2, 0.3, 0.2, 0.2, 0.1, 0.0, 0.0}, []float64{0.4, 0.5, 0.1}
	case config.WorldFloatingCity:
		return []float64{0, 0, 0, 0, 0, 0, 1.0}, []float64{0.5, 0.4, 0.1}
	default:
		return []float64{0.4, 0.3, 0.3, 0, 0, 0, 0}, []float64{0.7, 0.3, 0.0}
	}
}

// UpdateProgress adds travelled distance and reports whether this call
// completed the level. Completion is sticky.
func (l *Level) UpdateProgress(distance int) bool {
	l.Progress += nonNegative(distance)
	if l.Completed || l.Progress < l.Length {
		return false
	}
	l.Completed = true
	return true
}

// CompletionPercent returns progress as a percentage of the level length.
func (l *Level) CompletionPercent() float64 {
	if l.Length <= 0 {
		return 100
	}
	return float64(l.Progress) / float64(l.Length) * 100
}

// Score computes the level's contribution to the final score.
func (l *Level) Score() int {
	div := l.scoring.ProgressDivisor
	if div <= 0 {
		div = 1
	}
	score := l.Progress / div
	score += l.EnemiesDefeated * l.scoring.EnemyWeight
	score += l.ObstaclesPassed * l.scoring.ObstacleWeight
	if l.Completed {
		score += l.TargetScore + l.CompletionBonus
	}
	return score
}
