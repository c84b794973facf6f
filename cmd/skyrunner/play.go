package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-runner/internal/audio"
	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
	"github.com/vovakirdan/sky-runner/internal/platform/tui"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

var (
	flagWorld  string
	flagRecord string
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a run",
	Long: `Start a run in the chosen world.

Controls:
  W/S, Up/Down     - Climb / dive
  A/D, Left/Right  - Brake / accelerate
  Space            - Fire
  Enter            - Start
  P                - Pause
  R                - New run (after game over or victory)
  Esc              - Leave (while paused or after the run)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Worlds:
  cloud_kingdom    - Storm clouds and wind turbines
  crystal_canyon   - Rock towers and crystal storms
  floating_city    - Skyscrapers and heavy patrols

Examples:
  skyrunner play
  skyrunner play --world floating_city --difficulty hard
  skyrunner play --levels 5 --record ~/runs/five.rec
  skyrunner play --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagWorld, "world", string(config.WorldCloudKingdom), "World: cloud_kingdom, crystal_canyon, floating_city")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the run to this file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Master volume 0.0-1.0 (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	world, err := config.ParseWorld(flagWorld)
	if err != nil {
		return err
	}

	cfg, err := runtimeConfig(terminalSize())
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	defer closeLog()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "err", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	dispatcher := openAudio(logger)
	defer dispatcher.Close()

	return tui.Run(skyrunner.New(world), cfg, tui.Options{
		Store:      store,
		Audio:      dispatcher,
		Logger:     logger,
		RecordPath: flagRecord,
	})
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil { //#nosec G115 -- file descriptors fit in int
		width, height = w, h
	}
	return width, height
}

// openAudio starts the sound dispatcher from the config's audio section.
// Any failure falls back to silence.
func openAudio(logger *log.Logger) *audio.Dispatcher {
	ac := config.DefaultSkyRunnerConfig().Audio
	if cfg, err := config.Load(flagConfig); err == nil {
		ac = cfg.Audio
	} else {
		logger.Warn("config load failed, using default audio settings", "err", err)
	}
	if flagMute {
		ac.Enabled = false
	}
	if flagVolume >= 0 {
		ac.Volume = flagVolume
	}

	backend := audio.Open(ac, logger)
	logger.Debug("audio ready", "backend", fmt.Sprintf("%T", backend), "volume", ac.Volume)
	return audio.NewDispatcher(backend, audio.DefaultQueue, logger)
}
