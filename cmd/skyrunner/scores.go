package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/storage"
)

var flagScoresAll bool

var scoresCmd = &cobra.Command{
	Use:   "scores [world]",
	Short: "Show the best runs",
	Long: `Display the top 10 runs for a world. Without a world, every world is
shown. --difficulty filters by tier unless --all is given.

Examples:
  skyrunner scores
  skyrunner scores crystal_canyon --difficulty hard
  skyrunner scores floating_city --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Include every difficulty tier")
}

func runScores(cmd *cobra.Command, args []string) error {
	worlds := config.Worlds()
	if len(args) == 1 {
		w, err := config.ParseWorld(args[0])
		if err != nil {
			return err
		}
		worlds = []config.World{w}
	}

	difficulty := ""
	if !flagScoresAll && cmd.Flags().Changed("difficulty") {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		difficulty = string(d)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for i, w := range worlds {
		if i > 0 {
			fmt.Println()
		}
		if err := printRuns(store, w, difficulty); err != nil {
			return err
		}
	}
	return nil
}

func printRuns(store *storage.Store, world config.World, difficulty string) error {
	runs, err := store.TopRuns(string(world), difficulty, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", world.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyrunner play --world %s' to set the first score!\n", world)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-5s  %-8s  %s\n", "Rank", "Score", "Tier", "Levels", "Kills", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "----", "------", "-----", "------", "----")
	for i, r := range runs {
		result := "crashed"
		if r.Won {
			result = "victory"
		}
		fmt.Printf("  %-4d  %-8d  %-7s  %-6s  %-5d  %-8s  %s\n",
			i+1, r.Score, r.Difficulty, fmt.Sprintf("%d/%d", r.LevelsCompleted, r.Levels),
			r.EnemiesDefeated, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore(string(world), difficulty)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
