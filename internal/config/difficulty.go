package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name is not recognised.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is a named difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty resolves a tier name, case-insensitively.
// An empty name selects normal.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DifficultyNormal, nil
	case "easy":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// Label returns the upper-case tier name used in summaries.
func (d Difficulty) Label() string {
	return strings.ToUpper(string(d))
}

// For returns the tier configuration for a difficulty.
func (t TierTable) For(d Difficulty) (TierConfig, error) {
	switch d {
	case DifficultyEasy:
		return t.Easy, nil
	case DifficultyNormal:
		return t.Normal, nil
	case DifficultyHard:
		return t.Hard, nil
	}
	return TierConfig{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
}

// DifficultyManager derives the in-level pressure parameters from a tier
// and the level's completion percentage.
type DifficultyManager struct {
	tier     TierConfig
	lateFrom float64
}

// NewDifficultyManager creates a manager for a tier. lateFrom is the
// completion percentage at which the late-level parameters apply.
func NewDifficultyManager(tier TierConfig, lateFrom float64) *DifficultyManager {
	return &DifficultyManager{tier: tier, lateFrom: lateFrom}
}

// IsLate reports whether the level has reached its late phase.
func (d *DifficultyManager) IsLate(completion float64) bool {
	return completion >= d.lateFrom
}

// Pressure returns the obstacle/enemy spawn multiplier.
func (d *DifficultyManager) Pressure(completion float64) float64 {
	p := d.tier.Pressure.Early
	if d.IsLate(completion) {
		p = d.tier.Pressure.Late
	}
	if p < 1 {
		return 1
	}
	return p
}

// EnemyCap returns how many enemies may be alive at once.
func (d *DifficultyManager) EnemyCap(completion float64) int {
	scaled := int(float64(d.tier.MaxEnemies) * d.Pressure(completion))
	return max(d.tier.MaxEnemies, scaled)
}

// FireChance returns the per-tick chance a ready enemy fires.
// firstLevelLate applies on level one past the halfway point for tiers
// without spread fire.
func (d *DifficultyManager) FireChance(completion float64, levelNumber int, firstLevelLate float64) float64 {
	late := d.IsLate(completion)
	if d.tier.SpreadFire {
		if late {
			return d.tier.EnemyFireChanceLate
		}
		return d.tier.EnemyFireChance
	}
	if levelNumber == 1 && late {
		return firstLevelLate
	}
	if late {
		return d.tier.EnemyFireChanceLate
	}
	return d.tier.EnemyFireChance
}

// SpreadShot reports whether ready enemies fire a three-shot spread.
func (d *DifficultyManager) SpreadShot(completion float64) bool {
	return d.tier.SpreadFire && d.IsLate(completion)
}
