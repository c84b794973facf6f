package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recording and verify it",
	Long: `Load a recording made with --record, fly it again from its seed and
inputs, and check that the run ends in exactly the recorded state.

Exits non-zero when the state hash differs.

Examples:
  skyrunner replay run.rec`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("recording loaded", "path", args[0], "version", rec.Version, "spans", len(rec.Inputs))

	world, err := config.ParseWorld(rec.World)
	if err != nil {
		return err
	}
	fmt.Printf("Recording: %s\n", args[0])
	fmt.Printf("World:     %s (%s, %d levels)\n", world.Title(), rec.Difficulty, rec.Levels)
	fmt.Printf("Seed:      %d\n", rec.Seed)
	fmt.Printf("Steps:     %d in %d spans\n", rec.Steps, len(rec.Inputs))

	res, err := replay.Verify(rec)
	if res != nil {
		fmt.Println()
		fmt.Println(res.Game.Sim().FinalStats())
		fmt.Println()
		fmt.Printf("Ticks:     %d (recorded %d)\n", res.Ticks, rec.Ticks)
		fmt.Printf("Score:     %d (recorded %d)\n", res.Score, rec.Score)
		fmt.Printf("Hash:      %016x (recorded %016x)\n", res.Hash, rec.Hash)
	}
	if errors.Is(err, replay.ErrMismatch) {
		return fmt.Errorf("replay diverged: %w", err)
	}
	if err != nil {
		return err
	}

	fmt.Println("Replay verified.")
	return nil
}
