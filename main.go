// war is a turn-based territory conquest game for a single player against
// passive computer-held territories.
//
// Usage:
//
//	war play                - Play an interactive game
//	war simulate            - Run automated games and store their records
//
// Global flags:
//
//	--config <path>     - Path to a YAML config
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - zerolog level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"war/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "war",
	Short:         "War - conquer territories in your terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig reads the config, applies flag overrides and sets up logging.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(cfg.Level())
	return cfg, nil
}
