package config

import (
	_ "embed"
)

//go:embed defaults/skyrunner.yaml
var defaultSkyRunnerYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSkyRunnerYAML
}

func defaultTiers() TierTable {
	standard := PowerUpWeights{ScoreBoost: 0.50, Turbo: 0.25, Shield: 0.10, Health: 0.05}
	return TierTable{
		Easy: TierConfig{
			ScrollSpeed: 1.4, ObstacleRate: 0.008, EnemyRate: 0.003, PowerUpRate: 0.004,
			TurboRate: 0.002, ScoreBoostRate: 0.002, MaxEnemies: 8,
			Length: 4000, TargetScore: 800, CompletionBonus: 0,
			Pressure:        PressureConfig{Early: 1, Late: 3},
			EnemyFireChance: 0.02, EnemyFireChanceLate: 0.02,
			PowerUps: standard,
		},
		Normal: TierConfig{
			ScrollSpeed: 1.85, ObstacleRate: 0.012, EnemyRate: 0.005, PowerUpRate: 0.003,
			TurboRate: 0.0015, ScoreBoostRate: 0.0015, MaxEnemies: 12,
			Length: 5000, TargetScore: 1200, CompletionBonus: 500,
			Pressure:        PressureConfig{Early: 1, Late: 3},
			EnemyFireChance: 0.02, EnemyFireChanceLate: 0.02,
			PowerUps: standard,
		},
		Hard: TierConfig{
			ScrollSpeed: 2.35, ObstacleRate: 0.018, EnemyRate: 0.012, PowerUpRate: 0.006,
			TurboRate: 0.001, ScoreBoostRate: 0.001, MaxEnemies: 24,
			Length: 6000, TargetScore: 1500, CompletionBonus: 1000,
			Pressure:        PressureConfig{Early: 8, Late: 14},
			EnemyFireChance: 0.03, EnemyFireChanceLate: 0.04, SpreadFire: true,
			PowerUps: PowerUpWeights{ScoreBoost: 0.30, Turbo: 0.25, Shield: 0.25, Health: 0.20},
		},
	}
}

// DefaultSkyRunnerConfig returns the hardcoded configuration used when the
// embedded YAML cannot be parsed.
func DefaultSkyRunnerConfig() SkyRunnerConfig {
	return SkyRunnerConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:                60,
			Height:               40,
			StartX:               200,
			StartY:               300,
			MaxSpeed:             9.0,
			MaxVerticalSpeed:     9.8,
			Acceleration:         1.2,
			VerticalAcceleration: 1.1,
			Friction:             0.95,
			MinX:                 50,
			MaxX:                 690,
			MinY:                 50,
			MaxY:                 510,
			MaxHealth:            100,
			Lives:                3,
			ShootCooldown:        15,
			TurboFrames:          180,
			TurboScrollFactor:    1.5,
		},
		Combat: CombatConfig{
			HitInvulnFrames:          60,
			ShieldInvulnFrames:       20,
			PlayerShotSpeed:          10,
			PlayerShotBoost:          5,
			PlayerShotDamage:         50,
			EnemyShotSpeed:           -8,
			EnemyShotScrollDrag:      3,
			EnemyShootCooldown:       60,
			EnemyPatrolRange:         100,
			EnemyPatrolSpeed:         2,
			FirstLevelLateFireChance: 0.025,
			ObstaclePush:             20,
			TurbineSlowRadius:        120,
			TurbineSlowFactor:        0.35,
			TurbineSlowFrames:        20,
			LightningWidth:           24,
		},
		Scoring: ScoringConfig{
			DistanceFactor:  0.5,
			DodgeBonus:      10,
			DodgeLine:       -100,
			RockTowerBonus:  50,
			EnemyKill:       100,
			PowerUpPickup:   50,
			ProgressDivisor: 10,
			EnemyWeight:     100,
			ObstacleWeight:  50,
		},
		Spawn: SpawnConfig{
			SpawnOffset:            100,
			ObstacleGap:            200,
			BuildingGap:            220,
			EnemyGap:               300,
			PowerUpGap:             400,
			FeatureGap:             100,
			CloudGap:               60,
			CloudChance:            0.02,
			FeatureChance:          0.02,
			InitialClouds:          8,
			InitialFeatures:        6,
			StormMinY:              120,
			LatePairChance:         0.4,
			LatePairMinSeparation:  60,
			BuildingWidth:          70,
			BuildingMinHeight:      120,
			BuildingCeilingClear:   140,
			LateCompletionPercent:  50,
			ProjectileOffscreenPad: 50,
		},
		Tiers: defaultTiers(),
		Audio: AudioConfig{
			Enabled:   true,
			Backend:   "beep",
			Volume:    0.6,
			TracksDir: "~/.skyrunner/music",
			Ambient:   true,
		},
	}
}
