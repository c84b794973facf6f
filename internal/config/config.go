// Package config provides YAML-based configuration loading for Sky Runner:
// playfield and craft physics, combat and scoring constants, spawn cadence,
// per-difficulty tier tables and audio settings.
package config

// SkyRunnerConfig contains all tunable configuration for a run.
type SkyRunnerConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Combat  CombatConfig  `yaml:"combat"`
	Scoring ScoringConfig `yaml:"scoring"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Tiers   TierTable     `yaml:"tiers"`
	Audio   AudioConfig   `yaml:"audio"`
}

// FieldConfig defines the world dimensions in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the craft's size, physics and timers.
type PlayerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`

	MaxSpeed             float64 `yaml:"max_speed"`
	MaxVerticalSpeed     float64 `yaml:"max_vertical_speed"`
	Acceleration         float64 `yaml:"acceleration"`
	VerticalAcceleration float64 `yaml:"vertical_acceleration"`
	Friction             float64 `yaml:"friction"` // subtracted toward zero each tick

	// Playfield rectangle for the craft's top-left corner
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`

	MaxHealth         int     `yaml:"max_health"`
	Lives             int     `yaml:"lives"`
	ShootCooldown     int     `yaml:"shoot_cooldown"`
	TurboFrames       int     `yaml:"turbo_frames"`
	TurboScrollFactor float64 `yaml:"turbo_scroll_factor"`
}

// CombatConfig defines damage windows, projectiles and hazard effects.
type CombatConfig struct {
	HitInvulnFrames    int `yaml:"hit_invuln_frames"`
	ShieldInvulnFrames int `yaml:"shield_invuln_frames"`

	PlayerShotSpeed  float64 `yaml:"player_shot_speed"`
	PlayerShotBoost  float64 `yaml:"player_shot_boost"`
	PlayerShotDamage int     `yaml:"player_shot_damage"`

	EnemyShotSpeed      float64 `yaml:"enemy_shot_speed"`
	EnemyShotScrollDrag float64 `yaml:"enemy_shot_scroll_drag"` // subtracted from scroll for enemy shots
	EnemyShootCooldown  int     `yaml:"enemy_shoot_cooldown"`
	EnemyPatrolRange    float64 `yaml:"enemy_patrol_range"`
	EnemyPatrolSpeed    float64 `yaml:"enemy_patrol_speed"`

	// Fire chance used on the first level once it is half done (non-spread tiers)
	FirstLevelLateFireChance float64 `yaml:"first_level_late_fire_chance"`

	ObstaclePush      float64 `yaml:"obstacle_push"`
	TurbineSlowRadius float64 `yaml:"turbine_slow_radius"`
	TurbineSlowFactor float64 `yaml:"turbine_slow_factor"`
	TurbineSlowFrames int     `yaml:"turbine_slow_frames"`
	LightningWidth    int     `yaml:"lightning_width"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	DistanceFactor  float64 `yaml:"distance_factor"` // per-tick score = floor(scroll * factor)
	DodgeBonus      int     `yaml:"dodge_bonus"`
	DodgeLine       float64 `yaml:"dodge_line"` // x below which an active obstacle counts as dodged
	RockTowerBonus  int     `yaml:"rock_tower_bonus"`
	EnemyKill       int     `yaml:"enemy_kill"`
	PowerUpPickup   int     `yaml:"powerup_pickup"`
	ProgressDivisor int     `yaml:"progress_divisor"`
	EnemyWeight     int     `yaml:"enemy_weight"`    // level score per defeated enemy
	ObstacleWeight  int     `yaml:"obstacle_weight"` // level score per dodged obstacle
}

// SpawnConfig defines spawn cursors, cadence and scenery.
type SpawnConfig struct {
	SpawnOffset   float64 `yaml:"spawn_offset"` // new entities appear at field width + offset
	ObstacleGap   float64 `yaml:"obstacle_gap"`
	BuildingGap   float64 `yaml:"building_gap"`
	EnemyGap      float64 `yaml:"enemy_gap"`
	PowerUpGap    float64 `yaml:"powerup_gap"`
	FeatureGap    float64 `yaml:"feature_gap"`
	CloudGap      float64 `yaml:"cloud_gap"`
	CloudChance   float64 `yaml:"cloud_chance"`
	FeatureChance float64 `yaml:"feature_chance"`

	InitialClouds   int `yaml:"initial_clouds"`
	InitialFeatures int `yaml:"initial_features"`

	StormMinY              float64 `yaml:"storm_min_y"`
	LatePairChance         float64 `yaml:"late_pair_chance"`
	LatePairMinSeparation  float64 `yaml:"late_pair_min_separation"`
	BuildingWidth          int     `yaml:"building_width"`
	BuildingMinHeight      int     `yaml:"building_min_height"`
	BuildingCeilingClear   int     `yaml:"building_ceiling_clear"` // space kept free above the tallest building
	LateCompletionPercent  float64 `yaml:"late_completion_percent"`
	ProjectileOffscreenPad float64 `yaml:"projectile_offscreen_pad"`
}

// TierTable holds one TierConfig per difficulty.
type TierTable struct {
	Easy   TierConfig `yaml:"easy"`
	Normal TierConfig `yaml:"normal"`
	Hard   TierConfig `yaml:"hard"`
}

// TierConfig defines level parameters for one difficulty tier.
type TierConfig struct {
	ScrollSpeed    float64 `yaml:"scroll_speed"`
	ObstacleRate   float64 `yaml:"obstacle_rate"`
	EnemyRate      float64 `yaml:"enemy_rate"`
	PowerUpRate    float64 `yaml:"powerup_rate"`
	TurboRate      float64 `yaml:"turbo_rate"`
	ScoreBoostRate float64 `yaml:"score_boost_rate"`
	MaxEnemies     int     `yaml:"max_enemies"`

	Length          int `yaml:"length"`
	TargetScore     int `yaml:"target_score"`
	CompletionBonus int `yaml:"completion_bonus"`

	Pressure PressureConfig `yaml:"pressure"`

	EnemyFireChance     float64 `yaml:"enemy_fire_chance"`
	EnemyFireChanceLate float64 `yaml:"enemy_fire_chance_late"`
	SpreadFire          bool    `yaml:"spread_fire"` // late-level enemies fire three shots

	PowerUps PowerUpWeights `yaml:"powerups"`
}

// PressureConfig defines the spawn pressure multiplier before and after the
// level's halfway point.
type PressureConfig struct {
	Early float64 `yaml:"early"`
	Late  float64 `yaml:"late"`
}

// PowerUpWeights is the probability of each power-up type when a power-up
// spawn fires. Mass not covered by the four weights means nothing spawns.
type PowerUpWeights struct {
	ScoreBoost float64 `yaml:"score_boost"`
	Turbo      float64 `yaml:"turbo"`
	Shield     float64 `yaml:"shield"`
	Health     float64 `yaml:"health"`
}

// AudioConfig selects the audio backend and its settings.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Backend   string  `yaml:"backend"`
	Volume    float64 `yaml:"volume"` // 0.0 - 1.0
	TracksDir string  `yaml:"tracks_dir"`
	Ambient   bool    `yaml:"ambient"` // prefer *_ambient tracks when present
}
