package main

import (
	"os"

	"war/console"
	"war/engine"
	"war/game"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game",
	Long: `Play against the passive GREEN, BLACK and YELLOW armies.

Each round shows the map and your secret mission, then asks for an action:
  1 - Attack a territory (enter the attacking and defending IDs)
  2 - Check whether your mission is accomplished
  0 - Quit

Examples:
  war play
  war play --seed 42
  war play --config ./war.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	player, err := cfg.PlayerFaction()
	if err != nil {
		return err
	}
	rules, err := cfg.RuleSet()
	if err != nil {
		return err
	}
	options := []engine.Option{engine.WithRules(rules)}
	mission, err := cfg.FixedMission()
	if err != nil {
		return err
	}
	if mission != nil {
		options = append(options, engine.WithMission(*mission))
	}

	g, err := engine.New(player, game.NewRNG(cfg.Seed), options...)
	if err != nil {
		return err
	}
	defer g.Close()

	if err := console.NewSession(g, os.Stdin, os.Stdout).Run(); err != nil {
		return err
	}
	log.Debug().Msgf("game over, won: %t", g.Won())
	return nil
}
