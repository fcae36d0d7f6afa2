package experiments

import (
	"fmt"
	"sync"
	"time"

	"war/engine"
	"war/experiments/metrics"
	"war/game"
	"war/meta"
	"war/player"

	"github.com/rs/zerolog/log"
)

// Config describes a batch of simulated games.
type Config struct {
	NumGames   int
	Goroutines int
	Player     game.Faction
	Rules      string
	Policy     string
	Seed       uint64 // game i is seeded with Seed+i
	MaxRounds  int
	Mission    *game.Mission
}

// Report gathers the records of a batch.
type Report struct {
	Records []metrics.GameRecord
	Wins    int
	Seed    uint64
	Start   time.Time
	End     time.Time
}

// Run plays cfg.NumGames games, spreading them over cfg.Goroutines workers.
// Every game owns its world and generator.
func Run(cfg Config) (Report, error) {
	if cfg.NumGames <= 0 {
		return Report{}, fmt.Errorf("number of games must be positive, got %d", cfg.NumGames)
	}
	if cfg.Goroutines <= 0 {
		cfg.Goroutines = 1
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = meta.MAX_ROUNDS
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if _, err := game.ParseRules(cfg.Rules); err != nil {
		return Report{}, err
	}
	if _, err := player.NewPolicy(cfg.Policy, nil); err != nil {
		return Report{}, err
	}

	report := Report{
		Records: make([]metrics.GameRecord, cfg.NumGames),
		Seed:    cfg.Seed,
		Start:   time.Now(),
	}

	log.Info().Msgf("starting simulation of %d games on %d goroutines...", cfg.NumGames, cfg.Goroutines)

	task := make(chan int, cfg.NumGames)
	for i := 0; i < cfg.NumGames; i++ {
		task <- i
	}
	close(task)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := 0; i < cfg.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for id := range task {
				seed := cfg.Seed + uint64(id)
				metric, err := runGame(cfg, seed)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("game %d: %w", id+1, err)
					}
					mu.Unlock()
					continue
				}
				// Each game writes its own slot
				report.Records[id] = metrics.GameRecord{ID: id + 1, Seed: seed, GameMetric: metric}
				log.Debug().Msgf("completed game %d, won: %t", id+1, metric.Won)
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return Report{}, firstErr
	}
	for _, r := range report.Records {
		if r.Won {
			report.Wins++
		}
	}
	report.End = time.Now()

	log.Info().Msgf("completed simulation: %d of %d games won", report.Wins, cfg.NumGames)
	return report, nil
}

// runGame plays one game: check victory, attack, repeat until the mission is
// accomplished, no attack is left or the round limit is reached.
func runGame(cfg Config, seed uint64) (metrics.GameMetric, error) {
	rng := game.NewRNG(seed)
	rules, err := game.ParseRules(cfg.Rules)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	policy, err := player.NewPolicy(cfg.Policy, rng)
	if err != nil {
		return metrics.GameMetric{}, err
	}

	options := []engine.Option{
		engine.WithRules(rules),
		engine.WithMetrics(metrics.NewCollector()),
	}
	if cfg.Mission != nil {
		options = append(options, engine.WithMission(*cfg.Mission))
	}
	g, err := engine.New(cfg.Player, rng, options...)
	if err != nil {
		return metrics.GameMetric{}, err
	}

	for round := 0; round < cfg.MaxRounds && !g.Over(); round++ {
		if won, _ := g.CheckVictory(); won {
			break
		}
		attack, ok := policy.TakeTurn(g.World, g.Player)
		if !ok {
			break
		}
		if _, err := g.Attack(attack.From, attack.To); err != nil {
			g.Close()
			return metrics.GameMetric{}, err
		}
		g.EndRound()
	}
	return g.Close(), nil
}

// Write stores the batch setup and game records under root.
func Write(root string, cfg Config, report Report) (string, error) {
	writer, err := metrics.NewWriter(root, "simulation")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	rulesName := cfg.Rules
	if rulesName == "" {
		rulesName = game.SingleDieRulesName
	}
	policyName := cfg.Policy
	if policyName == "" {
		policyName = player.RandomPolicyName
	}
	err = writer.WriteSetup(metrics.Setup{
		NumGames:   cfg.NumGames,
		Goroutines: cfg.Goroutines,
		Policy:     policyName,
		Rules:      rulesName,
		Seed:       report.Seed,
		Wins:       report.Wins,
		StartTime:  report.Start,
		EndTime:    report.End,
		Duration:   report.End.Sub(report.Start),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	if err := writer.WriteGameRecords(report.Records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	return writer.Dir(), nil
}
