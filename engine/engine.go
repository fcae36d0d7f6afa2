package engine

import (
	"errors"
	"fmt"

	"war/experiments/metrics"
	"war/game"

	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Game carries everything one play-through needs: the world, the player's
// faction and the mission. The controller owns it for the whole game.
type Game struct {
	World   *game.World
	Player  game.Faction
	Mission game.Mission

	resolver *game.Resolver
	metrics  metrics.Collector
	over     bool
	won      bool
	closed   bool
}

type settings struct {
	rules        game.Rules
	mission      *game.Mission
	metrics      metrics.Collector
	worldOptions []game.WorldOption
}

type Option func(s *settings)

func WithRules(rules game.Rules) Option {
	return func(s *settings) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithMission skips the mission draw. A destruction mission without a target
// still draws its target.
func WithMission(mission game.Mission) Option {
	return func(s *settings) {
		s.mission = &mission
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func WithWorldOptions(options ...game.WorldOption) Option {
	return func(s *settings) {
		s.worldOptions = append(s.worldOptions, options...)
	}
}

// New builds the world, assigns the mission and returns a game ready for play.
func New(player game.Faction, rng game.RNG, options ...Option) (*Game, error) {
	s := settings{ // Default values
		rules:   game.NewSingleDieRules(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}

	world, err := game.NewWorld(player, rng, s.worldOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	var mission game.Mission
	if s.mission != nil {
		mission = *s.mission
		if mission.ID == game.DestroyFaction && !mission.Target.Valid() {
			opponents := game.Opponents(player)
			mission.Target = opponents[rng.Intn(len(opponents))]
		}
		if mission.Target == player {
			world.Destroy()
			return nil, fmt.Errorf("mission target %s is the player's own faction", player)
		}
	} else {
		mission = game.AssignMission(rng, player)
	}

	g := &Game{
		World:    world,
		Player:   player,
		Mission:  mission,
		resolver: game.NewResolver(s.rules, rng),
		metrics:  s.metrics,
	}
	g.metrics.Start(player, mission, s.rules.Name())

	log.Info().Msgf("game created for %s with %s rules, %d territories in play", player, s.rules.Name(), world.Populated())
	log.Debug().Int("mission", int(mission.ID)).Stringer("target", mission.Target).Msg("mission assigned")
	return g, nil
}
