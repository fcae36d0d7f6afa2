package game

import (
	"testing"

	"war/meta"

	"github.com/stretchr/testify/require"
)

func duel(attackerTroops, defenderTroops int) *World {
	return worldOf(meta.MAX_TERRITORIES, map[int]Territory{
		0: {Name: "T-01", Faction: Blue, Troops: attackerTroops},
		1: {Name: "T-02", Faction: Green, Troops: defenderTroops},
		2: {Name: "T-03", Faction: Blue, Troops: 3},
	})
}

func TestResolverAttack(t *testing.T) {
	t.Run("higher attack die costs the defender a troop", func(t *testing.T) {
		w := duel(3, 3)
		resolver := NewResolver(NewSingleDieRules(), dice(5, 2))

		got, err := resolver.Attack(w, 0, 1, Blue)

		require.NoError(t, err)
		require.Equal(t, []int{5}, got.AttackerRolls)
		require.Equal(t, []int{2}, got.DefenderRolls)
		require.Equal(t, 0, got.AttackerLosses)
		require.Equal(t, 1, got.DefenderLosses)
		require.False(t, got.Conquered)
		require.Equal(t, Territory{Name: "T-01", Faction: Blue, Troops: 3}, got.AttackerAfter)
		require.Equal(t, Territory{Name: "T-02", Faction: Green, Troops: 2}, got.DefenderAfter)

		defender, _ := w.Territory(1)
		require.Equal(t, 2, defender.Troops, "World should reflect the outcome")
	})

	t.Run("ties favour the defender", func(t *testing.T) {
		w := duel(3, 3)
		resolver := NewResolver(NewSingleDieRules(), dice(2, 2))

		got, err := resolver.Attack(w, 0, 1, Blue)

		require.NoError(t, err)
		require.Equal(t, 1, got.AttackerLosses)
		require.Equal(t, 0, got.DefenderLosses)
		require.Equal(t, 2, got.AttackerAfter.Troops)
		require.Equal(t, 3, got.DefenderAfter.Troops)
	})

	t.Run("lower attack die costs the attacker a troop", func(t *testing.T) {
		w := duel(2, 4)
		got, err := NewResolver(NewSingleDieRules(), dice(1, 6)).Attack(w, 0, 1, Blue)

		require.NoError(t, err)
		require.Equal(t, 1, got.AttackerAfter.Troops, "Attacker keeps its last troop")
		require.Equal(t, 4, got.DefenderAfter.Troops)
	})

	t.Run("pools are reported but single die rules throw one die each", func(t *testing.T) {
		w := duel(5, 4)
		got, err := NewResolver(NewSingleDieRules(), dice(4, 3)).Attack(w, 0, 1, Blue)

		require.NoError(t, err)
		require.Equal(t, 4, got.AttackerPool)
		require.Equal(t, 4, got.DefenderPool)
		require.Len(t, got.AttackerRolls, 1)
		require.Len(t, got.DefenderRolls, 1)
	})

	t.Run("conquering a territory", func(t *testing.T) {
		w := duel(3, 1)
		got, err := NewResolver(NewSingleDieRules(), dice(6, 1)).Attack(w, 0, 1, Blue)

		require.NoError(t, err)
		require.True(t, got.Conquered)
		require.Equal(t, Territory{Name: "T-02", Faction: Blue, Troops: 1}, got.DefenderAfter,
			"Defender should change hands with a single occupying troop")
		require.Equal(t, 2, got.AttackerAfter.Troops, "The occupying troop leaves the attacker")
		require.Equal(t, 3, w.Populated(), "Conquest changes ownership, not count")
		require.True(t, w.FactionEliminated(Green))
	})

	t.Run("conquering with the minimum attacker", func(t *testing.T) {
		w := duel(2, 1)
		got, err := NewResolver(NewSingleDieRules(), dice(3, 2)).Attack(w, 0, 1, Blue)

		require.NoError(t, err)
		require.True(t, got.Conquered)
		require.Equal(t, 1, got.AttackerAfter.Troops)
		require.Equal(t, 1, got.DefenderAfter.Troops)
	})
}

func TestResolverRuleViolations(t *testing.T) {
	cases := []struct {
		name     string
		attacker int
		defender int
		player   Faction
		troops   int
		kind     ViolationKind
	}{
		{"attacker with a single troop", 0, 1, Blue, 1, InsufficientTroops},
		{"attacking itself", 0, 0, Blue, 3, SelfAttack},
		{"attacking an own territory", 0, 2, Blue, 3, SameFaction},
		{"attacking from a foreign territory", 1, 0, Blue, 3, NotOwned},
		{"attacking an empty slot", 0, 7, Blue, 3, EmptyTerritory},
		{"attacking from an empty slot", 7, 1, Blue, 3, EmptyTerritory},
		{"negative index", -1, 1, Blue, 3, IndexOutOfRange},
		{"index past capacity", 0, meta.MAX_TERRITORIES, Blue, 3, IndexOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := duel(tc.troops, 2)
			before := w.Snapshot()
			rng := &scriptedRNG{}

			_, err := NewResolver(NewSingleDieRules(), rng).Attack(w, tc.attacker, tc.defender, tc.player)

			require.ErrorIs(t, err, ErrRuleViolation)
			var v *RuleViolation
			require.ErrorAs(t, err, &v)
			require.Equal(t, tc.kind, v.Kind)
			require.Equal(t, before, w.Snapshot(), "World should not change on a rule violation")
		})
	}
}

func TestStandardRules(t *testing.T) {
	t.Run("comparing sorted pairs", func(t *testing.T) {
		rules := NewStandardRules()

		attackerLosses, defenderLosses := rules.DetermineAttackOutcome([]int{6, 4, 1}, []int{5, 4})

		require.Equal(t, 1, attackerLosses, "Tie on the second pair goes to the defender")
		require.Equal(t, 1, defenderLosses)
	})

	t.Run("dice are capped by the pools", func(t *testing.T) {
		w := duel(3, 1)
		got, err := NewResolver(NewStandardRules(), dice(2, 5, 1)).Attack(w, 0, 1, Blue)

		require.NoError(t, err)
		require.Equal(t, []int{5, 2}, got.AttackerRolls, "Two attack dice for a pool of 2")
		require.Equal(t, []int{1}, got.DefenderRolls, "One defence die for a single troop")
		require.True(t, got.Conquered)
		require.Equal(t, 2, got.AttackerAfter.Troops)
	})
}

func TestParseRules(t *testing.T) {
	r, err := ParseRules("")
	require.NoError(t, err)
	require.Equal(t, SingleDieRulesName, r.Name())

	r, err = ParseRules("standard")
	require.NoError(t, err)
	require.Equal(t, StandardRulesName, r.Name())

	_, err = ParseRules("blitz")
	require.Error(t, err)
}

func TestLegalAttacks(t *testing.T) {
	w := worldOf(meta.MAX_TERRITORIES, map[int]Territory{
		0: {Name: "T-01", Faction: Blue, Troops: 3},
		1: {Name: "T-02", Faction: Green, Troops: 2},
		2: {Name: "T-03", Faction: Blue, Troops: 1},
		3: {Name: "T-04", Faction: Black, Troops: 4},
	})

	require.Equal(t, []Attack{{From: 0, To: 1}, {From: 0, To: 3}}, w.LegalAttacks(Blue))
	require.Empty(t, w.LegalAttacks(Yellow))
}

func TestAttackInvariants(t *testing.T) {
	for _, rules := range []Rules{NewSingleDieRules(), NewStandardRules()} {
		t.Run(rules.Name(), func(t *testing.T) {
			for seed := uint64(1); seed <= 20; seed++ {
				rng := NewRNG(seed)
				w, err := NewWorld(Blue, rng)
				require.NoError(t, err)
				resolver := NewResolver(rules, rng)

				for step := 0; step < 200; step++ {
					attacks := w.LegalAttacks(Blue)
					if len(attacks) == 0 {
						break
					}
					a := attacks[rng.Intn(len(attacks))]
					_, err := resolver.Attack(w, a.From, a.To, Blue)
					require.NoError(t, err)

					require.Equal(t, meta.INITIAL_TERRITORIES, w.Populated(), "Populated count never changes")
					for _, v := range w.Snapshot() {
						require.GreaterOrEqual(t, v.Troops, 1, "Populated territory %s lost its last troop", v.Name)
						require.True(t, v.Faction.Valid())
					}
				}
			}
		})
	}
}
