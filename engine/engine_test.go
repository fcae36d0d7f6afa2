package engine

import (
	"testing"

	"war/experiments/metrics"
	"war/game"
	"war/meta"

	"github.com/stretchr/testify/require"
)

type scriptedRNG struct {
	draws []int
}

func (s *scriptedRNG) Intn(n int) int {
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

// fourEach deals 4 troops to every initial territory, then replays faces.
func fourEach(faces ...int) *scriptedRNG {
	draws := []int{2, 2, 2, 2, 2}
	for _, f := range faces {
		draws = append(draws, f-1)
	}
	return &scriptedRNG{draws: draws}
}

func TestNew(t *testing.T) {
	t.Run("creating a game with a drawn mission", func(t *testing.T) {
		g, err := New(game.Blue, game.NewRNG(5))
		require.NoError(t, err)
		defer g.Close()

		require.Equal(t, game.Blue, g.Player)
		require.Contains(t, game.MissionIDs, g.Mission.ID)
		require.Len(t, g.Territories(), meta.INITIAL_TERRITORIES)
		require.Equal(t, game.SingleDieRulesName, g.Rules().Name())
		require.False(t, g.Over())
	})

	t.Run("forcing a destruction mission draws its target", func(t *testing.T) {
		g, err := New(game.Blue, game.NewRNG(5), WithMission(game.Mission{ID: game.DestroyFaction}))
		require.NoError(t, err)
		defer g.Close()

		require.Equal(t, game.DestroyFaction, g.Mission.ID)
		require.Contains(t, game.Opponents(game.Blue), g.Mission.Target)
	})

	t.Run("rejecting the player as target", func(t *testing.T) {
		_, err := New(game.Blue, game.NewRNG(5), WithMission(game.Mission{ID: game.DestroyFaction, Target: game.Blue}))
		require.Error(t, err)
	})

	t.Run("propagating allocation failures", func(t *testing.T) {
		_, err := New(game.Blue, game.NewRNG(5), WithWorldOptions(game.WithCapacity(2)))
		require.ErrorIs(t, err, game.ErrAllocation)
	})

	t.Run("selecting the rules", func(t *testing.T) {
		g, err := New(game.Blue, game.NewRNG(5), WithRules(game.NewStandardRules()))
		require.NoError(t, err)
		defer g.Close()

		require.Equal(t, game.StandardRulesName, g.Rules().Name())
	})
}

func TestGamePlay(t *testing.T) {
	t.Run("destroying the target faction wins the game", func(t *testing.T) {
		collector := metrics.NewCollector()
		g, err := New(game.Blue, fourEach(6, 1, 6, 1, 6, 1, 6, 1),
			WithMission(game.Mission{ID: game.DestroyFaction, Target: game.Green}),
			WithMetrics(collector))
		require.NoError(t, err)

		won, progress := g.CheckVictory()
		require.False(t, won)
		require.Equal(t, 2, progress.Territories)

		var outcome game.AttackOutcome
		for i := 0; i < 4; i++ {
			outcome, err = g.Attack(0, 1)
			require.NoError(t, err)
			g.EndRound()
		}
		require.True(t, outcome.Conquered)
		require.Equal(t, game.Blue, outcome.DefenderAfter.Faction)

		won, progress = g.CheckVictory()
		require.True(t, won)
		require.Equal(t, game.StatusSatisfied, progress.Status)
		require.True(t, g.Over())
		require.True(t, g.Won())

		_, err = g.Attack(4, 2)
		require.ErrorIs(t, err, ErrGameOver)

		metric := g.Close()
		require.Equal(t, 4, metric.Attacks)
		require.Equal(t, 1, metric.Conquests)
		require.Equal(t, 4, metric.Rounds)
		require.Equal(t, 2, metric.VictoryChecks)
		require.True(t, metric.Won)
	})

	t.Run("rule violations leave the game running", func(t *testing.T) {
		collector := metrics.NewCollector()
		g, err := New(game.Blue, fourEach(), WithMission(game.Mission{ID: game.ConquerTerritories}), WithMetrics(collector))
		require.NoError(t, err)

		before := g.Territories()
		_, err = g.Attack(0, 4)
		require.ErrorIs(t, err, game.ErrRuleViolation)
		require.Equal(t, before, g.Territories())
		require.False(t, g.Over())

		metric := g.Close()
		require.Equal(t, 1, metric.Violations)
		require.Zero(t, metric.Attacks)
	})

	t.Run("unimplemented missions never end the game", func(t *testing.T) {
		g, err := New(game.Blue, fourEach(), WithMission(game.Mission{ID: game.ConquerEighteen}))
		require.NoError(t, err)
		defer g.Close()

		won, progress := g.CheckVictory()
		require.False(t, won)
		require.Equal(t, game.StatusUnimplemented, progress.Status)
		require.False(t, g.Over())
	})

	t.Run("quitting ends the game", func(t *testing.T) {
		g, err := New(game.Blue, fourEach(), WithMission(game.Mission{ID: game.ConquerTerritories}))
		require.NoError(t, err)
		defer g.Close()

		g.Quit()

		require.True(t, g.Over())
		require.False(t, g.Won())
		_, err = g.Attack(0, 1)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("closing releases the world once", func(t *testing.T) {
		g, err := New(game.Blue, fourEach(), WithMission(game.Mission{ID: game.ConquerTerritories}))
		require.NoError(t, err)

		g.Close()

		require.NotPanics(t, func() { g.Close() })
		require.Panics(t, func() { g.Territories() })
	})

	t.Run("legal attacks start from the player's territories", func(t *testing.T) {
		g, err := New(game.Blue, fourEach(), WithMission(game.Mission{ID: game.ConquerTerritories}))
		require.NoError(t, err)
		defer g.Close()

		attacks := g.LegalAttacks()
		require.Len(t, attacks, 6, "Two player territories times three enemy territories")
		for _, a := range attacks {
			require.Contains(t, []int{0, 4}, a.From)
		}
	})
}
