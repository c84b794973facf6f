package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-runner/internal/config"
	"github.com/vovakirdan/sky-runner/internal/games/skyrunner"
	"github.com/vovakirdan/sky-runner/internal/registry"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "List worlds and difficulty tiers",
	Long:  `Shows every registered world and the difficulty tier table of the active config.`,
	Args:  cobra.NoArgs,
	RunE:  runWorlds,
}

func runWorlds(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	games := registry.List()
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(strings.TrimPrefix(g.ID, skyrunner.IDPrefix)))
	}

	fmt.Println("Worlds:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		if !strings.HasPrefix(g.ID, skyrunner.IDPrefix) {
			continue
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, strings.TrimPrefix(g.ID, skyrunner.IDPrefix), g.Title)
	}

	fmt.Println()
	fmt.Println("Difficulty tiers:")
	fmt.Println()
	fmt.Printf("  %-8s  %6s  %6s  %6s  %6s  %7s  %7s  %6s\n",
		"Tier", "Scroll", "Obst.", "Enemy", "Power", "MaxEnm", "Length", "Target")
	for _, d := range config.Difficulties() {
		tier, err := cfg.Tiers.For(d)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s  %6.1f  %6.3f  %6.3f  %6.3f  %7d  %7d  %6d\n",
			d.Label(), tier.ScrollSpeed, tier.ObstacleRate, tier.EnemyRate, tier.PowerUpRate,
			tier.MaxEnemies, tier.Length, tier.TargetScore)
	}

	fmt.Println()
	fmt.Println("Run 'skyrunner play --world <id>' to fly.")
	return nil
}
