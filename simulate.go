package main

import (
	"fmt"

	"war/experiments"

	"github.com/spf13/cobra"
)

var (
	flagGames      int
	flagGoroutines int
	flagPolicy     string
	flagOut        string
	flagMaxRounds  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run automated games and store their records",
	Long: `Play a batch of games with an automated policy and write
setup.json and game_records.csv under <out>/simulation/<timestamp>.

Policies:
  random - pick any legal attack
  greedy - pick the attack with the largest troop difference

Examples:
  war simulate --games 100
  war simulate --games 1000 --goroutines 8 --policy greedy --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games")
	simulateCmd.Flags().IntVar(&flagGoroutines, "goroutines", 4, "Games played in parallel")
	simulateCmd.Flags().StringVar(&flagPolicy, "policy", "random", "Attack policy: random, greedy")
	simulateCmd.Flags().StringVar(&flagOut, "out", "experiments", "Output directory")
	simulateCmd.Flags().IntVar(&flagMaxRounds, "max-rounds", 0, "Round limit per game (0 = default)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	player, err := cfg.PlayerFaction()
	if err != nil {
		return err
	}
	mission, err := cfg.FixedMission()
	if err != nil {
		return err
	}

	expCfg := experiments.Config{
		NumGames:   flagGames,
		Goroutines: flagGoroutines,
		Player:     player,
		Rules:      cfg.Rules,
		Policy:     flagPolicy,
		Seed:       cfg.Seed,
		MaxRounds:  flagMaxRounds,
		Mission:    mission,
	}
	report, err := experiments.Run(expCfg)
	if err != nil {
		return err
	}
	dir, err := experiments.Write(flagOut, expCfg, report)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d games won, records written to %s\n", report.Wins, len(report.Records), dir)
	return nil
}
