// skyrunner is a side-scrolling sky shooter for the terminal.
//
// Usage:
//
//	skyrunner play             - Fly a run in one world
//	skyrunner menu             - Pick world and difficulty interactively
//	skyrunner worlds           - List worlds and difficulty tiers
//	skyrunner scores [world]   - Show the best runs
//	skyrunner simulate         - Run a headless autopiloted game
//	skyrunner replay <file>    - Re-simulate and verify a recording
//	skyrunner serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyrunner/runs.db)
//	--config <path>      - Custom game config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

// logPath is where interactive modes write logs; the terminal belongs to
// the game.
const logPath = "~/.skyrunner/skyrunner.log"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyrunner",
	Short: "Sky Runner - a side-scrolling sky shooter in your terminal",
	Long: `Sky Runner is a side-scrolling shooter: steer a small craft through
three worlds, dodge obstacles and storms, shoot down enemy craft and grab
power-ups on the way to the end of every level.

Available commands:
  play      - Fly a run in one world
  menu      - Interactive world and difficulty picker
  worlds    - Show worlds and difficulty tiers
  scores    - View the best runs
  simulate  - Headless autopiloted run
  replay    - Verify a recorded run
  serve     - Start SSH server for remote play

Examples:
  skyrunner play --world crystal_canyon --difficulty hard --levels 3
  skyrunner menu
  skyrunner scores floating_city
  skyrunner simulate --ticks 5000 --seed 42
  skyrunner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty tier: easy, normal, hard")
	rootCmd.PersistentFlags().IntVar(&flagLevels, "levels", 1, fmt.Sprintf("Levels in the campaign (1-%d)", skyrunner.MaxLevels))
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(worldsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the application logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyrunner",
		Level:           level,
	}), nil
}

// fileLogger opens the log file for interactive modes. The returned close
// function is never nil.
func fileLogger() (*log.Logger, func(), error) {
	path := config.ExpandHome(logPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- fixed path under the user's home
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	return logger, func() { f.Close() }, nil
}

// runtimeConfig collects the global flags into a runtime config and checks
// them before any game starts.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return core.RuntimeConfig{}, err
	}
	if flagLevels < 1 || flagLevels > skyrunner.MaxLevels {
		return core.RuntimeConfig{}, fmt.Errorf("%w: %d", skyrunner.ErrLevelCount, flagLevels)
	}
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Difficulty: flagDifficulty,
		Levels:     flagLevels,
		ConfigPath: flagConfig,
	}, nil
}
