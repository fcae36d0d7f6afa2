package player

import (
	"fmt"

	"war/game"
)

// Policy chooses the next attack for player. ok is false when no attack is possible.
type Policy interface {
	Name() string
	TakeTurn(w *game.World, player game.Faction) (attack game.Attack, ok bool)
}

const (
	RandomPolicyName = "random"
	GreedyPolicyName = "greedy"
)

// NewPolicy returns the policy registered under name.
func NewPolicy(name string, rng game.RNG) (Policy, error) {
	switch name {
	case "", RandomPolicyName:
		return NewRandomPolicy(rng), nil
	case GreedyPolicyName:
		return NewGreedyPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// RandomPolicy picks uniformly among the legal attacks.
type RandomPolicy struct {
	rng game.RNG
}

func NewRandomPolicy(rng game.RNG) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (p *RandomPolicy) Name() string {
	return RandomPolicyName
}

func (p *RandomPolicy) TakeTurn(w *game.World, player game.Faction) (game.Attack, bool) {
	attacks := w.LegalAttacks(player)
	if len(attacks) == 0 {
		return game.Attack{}, false
	}
	return attacks[p.rng.Intn(len(attacks))], true
}

// GreedyPolicy picks the attack with the largest troop difference, the first one on ties.
type GreedyPolicy struct{}

func NewGreedyPolicy() *GreedyPolicy {
	return &GreedyPolicy{}
}

func (p *GreedyPolicy) Name() string {
	return GreedyPolicyName
}

func (p *GreedyPolicy) TakeTurn(w *game.World, player game.Faction) (game.Attack, bool) {
	var best game.Attack
	found := false
	bestDiff := 0
	for _, a := range w.LegalAttacks(player) {
		attacker, _ := w.Territory(a.From)
		defender, _ := w.Territory(a.To)
		// Troop difference mimics the line of attack
		diff := attacker.Troops - defender.Troops
		if !found || diff > bestDiff {
			best, bestDiff, found = a, diff, true
		}
	}
	return best, found
}
