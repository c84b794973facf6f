package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "skyrunner.yaml"

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads Sky Runner configuration.
// Search order: customPath -> ~/.skyrunner/configs/skyrunner.yaml ->
// ./configs/skyrunner.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial overrides work.
func Load(customPath string) (SkyRunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkyRunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return SkyRunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SkyRunnerConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultSkyRunnerYAML)
	if err != nil {
		return DefaultSkyRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (SkyRunnerConfig, error) {
	cfg := DefaultSkyRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyRunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyrunner", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c SkyRunnerConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	}
	if c.Player.MinX > c.Player.MaxX || c.Player.MinY > c.Player.MaxY {
		return fmt.Errorf("%w: empty playfield rectangle", ErrInvalidConfig)
	}
	if c.Player.Lives <= 0 || c.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: lives and max health must be positive", ErrInvalidConfig)
	}
	for _, d := range Difficulties() {
		tier, _ := c.Tiers.For(d)
		if err := tier.validate(); err != nil {
			return fmt.Errorf("%w: tier %s: %w", ErrInvalidConfig, d, err)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %.2f outside [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

func (t TierConfig) validate() error {
	rates := map[string]float64{
		"obstacle_rate":    t.ObstacleRate,
		"enemy_rate":       t.EnemyRate,
		"powerup_rate":     t.PowerUpRate,
		"turbo_rate":       t.TurboRate,
		"score_boost_rate": t.ScoreBoostRate,
	}
	for name, r := range rates {
		if r < 0 || r > 1 {
			return fmt.Errorf("%s %.4f outside [0,1]", name, r)
		}
	}
	if t.ScrollSpeed <= 0 {
		return fmt.Errorf("scroll_speed must be positive")
	}
	if t.Length <= 0 {
		return fmt.Errorf("length must be positive")
	}
	sum := t.PowerUps.ScoreBoost + t.PowerUps.Turbo + t.PowerUps.Shield + t.PowerUps.Health
	if sum > 1+1e-9 {
		return fmt.Errorf("power-up weights sum to %.3f", sum)
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
