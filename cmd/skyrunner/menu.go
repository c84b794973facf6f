package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
	"github.com/vovakirdan/sky-runner/internal/platform/tui"
	"github.com/vovakirdan/sky-runner/internal/registry"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a world and difficulty interactively",
	Long: `Start Sky Runner in interactive menu mode.

Pick a world, then set the difficulty and the number of levels with
Left/Right. After a run ends, Esc returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty or level count
  Enter/Space     - Fly
  Tab             - Best runs
  Q               - Quit

Examples:
  skyrunner menu
  skyrunner menu --fps 30
  skyrunner menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Master volume 0.0-1.0 (default from config)")
}

func runMenu(_ *cobra.Command, _ []string) error {
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
		store = nil
	} else {
		defer store.Close()
	}

	dispatcher := openAudio(logger)
	defer dispatcher.Close()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Keep size changes and the chosen settings
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		created, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}
		game, ok := created.(*skyrunner.Game)
		if !ok {
			return fmt.Errorf("%s is not a Sky Runner world", menuResult.GameID)
		}

		// Fresh seed for every run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, tui.Options{Store: store, Audio: dispatcher, Logger: logger}); err != nil {
			logger.Error("run failed", "world", menuResult.World, "err", err)
		}
	}
}
