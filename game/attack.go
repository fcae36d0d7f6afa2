package game

// Attack is an ordered pair of slot indices.
type Attack struct {
	From int
	To   int
}

// AttackOutcome reports a resolved battle. Rolls are sorted highest first.
type AttackOutcome struct {
	Attack
	AttackerPool   int
	DefenderPool   int
	AttackerRolls  []int
	DefenderRolls  []int
	AttackerLosses int
	DefenderLosses int
	Conquered      bool
	AttackerAfter  Territory
	DefenderAfter  Territory
}

// ValidateAttack checks every precondition of an attack by player from attackerID on defenderID.
func (w *World) ValidateAttack(attackerID, defenderID int, player Faction) error {
	w.mustBeAlive()
	if attackerID < 0 || attackerID >= len(w.slots) || defenderID < 0 || defenderID >= len(w.slots) {
		return violation(IndexOutOfRange, attackerID, defenderID)
	}
	if attackerID == defenderID {
		return violation(SelfAttack, attackerID, defenderID)
	}
	attacker, defender := w.slots[attackerID], w.slots[defenderID]
	if attacker == nil || defender == nil {
		return violation(EmptyTerritory, attackerID, defenderID)
	}
	if attacker.Faction != player {
		return violation(NotOwned, attackerID, defenderID)
	}
	if attacker.Troops < 2 {
		return violation(InsufficientTroops, attackerID, defenderID)
	}
	if attacker.Faction == defender.Faction {
		return violation(SameFaction, attackerID, defenderID)
	}
	return nil
}

// LegalAttacks enumerates every attack player may launch.
func (w *World) LegalAttacks(player Faction) []Attack {
	w.mustBeAlive()
	var attacks []Attack
	for from := range w.slots {
		for to := range w.slots {
			if w.ValidateAttack(from, to, player) == nil {
				attacks = append(attacks, Attack{From: from, To: to})
			}
		}
	}
	return attacks
}

// Resolver applies battles to a world.
type Resolver struct {
	rules Rules
	rng   RNG
}

func NewResolver(rules Rules, rng RNG) *Resolver {
	return &Resolver{rules: rules, rng: rng}
}

func (r *Resolver) Rules() Rules {
	return r.rules
}

// Attack resolves one battle round. On a RuleViolation nothing is rolled and
// the world is left as it was; otherwise every update is applied together.
func (r *Resolver) Attack(w *World, attackerID, defenderID int, player Faction) (AttackOutcome, error) {
	if err := w.ValidateAttack(attackerID, defenderID, player); err != nil {
		return AttackOutcome{}, err
	}
	attacker, defender := w.slots[attackerID], w.slots[defenderID]

	// Must leave at least one troop behind
	attackerPool := attacker.Troops - 1
	defenderPool := defender.Troops

	attackerRolls := rollDice(r.rng, min(attackerPool, r.rules.MaxAttackDice()))
	defenderRolls := rollDice(r.rng, min(defenderPool, r.rules.MaxDefendDice()))
	attackerLosses, defenderLosses := r.rules.DetermineAttackOutcome(attackerRolls, defenderRolls)

	attacker.Troops -= attackerLosses
	defender.Troops -= defenderLosses

	conquered := false
	if defender.Troops <= 0 {
		// One troop moves in
		defender.Faction = attacker.Faction
		defender.Troops = 1
		attacker.Troops--
		conquered = true
	}

	return AttackOutcome{
		Attack:         Attack{From: attackerID, To: defenderID},
		AttackerPool:   attackerPool,
		DefenderPool:   defenderPool,
		AttackerRolls:  attackerRolls,
		DefenderRolls:  defenderRolls,
		AttackerLosses: attackerLosses,
		DefenderLosses: defenderLosses,
		Conquered:      conquered,
		AttackerAfter:  *attacker,
		DefenderAfter:  *defender,
	}, nil
}
