package engine

import (
	"errors"

	"war/experiments/metrics"
	"war/game"

	"github.com/rs/zerolog/log"
)

// Attack resolves a battle from the player's territory at attackerID on defenderID.
func (g *Game) Attack(attackerID, defenderID int) (game.AttackOutcome, error) {
	if g.over {
		return game.AttackOutcome{}, ErrGameOver
	}

	outcome, err := g.resolver.Attack(g.World, attackerID, defenderID, g.Player)
	if err != nil {
		var v *game.RuleViolation
		if errors.As(err, &v) {
			g.metrics.AddViolation()
			log.Debug().Msgf("attack %d -> %d refused: %s", attackerID, defenderID, v.Kind)
		}
		return game.AttackOutcome{}, err
	}
	g.metrics.AddAttack(outcome.Conquered)

	log.Debug().
		Ints("attack", outcome.AttackerRolls).
		Ints("defence", outcome.DefenderRolls).
		Msgf("attack %s -> %s resolved", outcome.AttackerAfter.Name, outcome.DefenderAfter.Name)
	if outcome.Conquered {
		log.Info().Msgf("%s conquered %s", g.Player, outcome.DefenderAfter.Name)
	}
	return outcome, nil
}

// CheckVictory evaluates the mission. A satisfied mission ends the game.
func (g *Game) CheckVictory() (bool, game.Progress) {
	won, progress := game.EvaluateVictory(g.World, g.Player, g.Mission)
	g.metrics.AddVictoryCheck()

	if progress.Status == game.StatusUnimplemented {
		log.Warn().Msgf("victory check for mission %d is not implemented", int(g.Mission.ID))
	}
	if won && !g.over {
		g.over = true
		g.won = true
		log.Info().Msgf("%s accomplished mission %d", g.Player, int(g.Mission.ID))
	}
	return won, progress
}

// EndRound marks the end of a round.
func (g *Game) EndRound() {
	g.metrics.AddRound()
}

// Quit ends the game without victory.
func (g *Game) Quit() {
	if !g.over {
		log.Info().Msg("player left the game")
	}
	g.over = true
}

func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Won() bool {
	return g.won
}

// Territories returns the populated slots for rendering.
func (g *Game) Territories() []game.TerritoryView {
	return g.World.Snapshot()
}

func (g *Game) LegalAttacks() []game.Attack {
	return g.World.LegalAttacks(g.Player)
}

func (g *Game) Rules() game.Rules {
	return g.resolver.Rules()
}

// Close ends the game and releases the world. Safe to call more than once.
func (g *Game) Close() metrics.GameMetric {
	if g.closed {
		return metrics.GameMetric{}
	}
	g.closed = true
	g.over = true
	metric := g.metrics.Complete(g.won)
	g.World.Destroy()
	log.Debug().Msg("world released")
	return metric
}
