package game

// SingleDieRules is the implemented battle rule: one attack die against one
// defence die, the loser of the comparison drops exactly one troop and ties
// go to the defender. Troop pools never raise the dice count above one.
type SingleDieRules struct{}

func NewSingleDieRules() *SingleDieRules {
	return &SingleDieRules{}
}

func (sr *SingleDieRules) Name() string {
	return SingleDieRulesName
}

func (sr *SingleDieRules) MaxAttackDice() int {
	return 1
}

func (sr *SingleDieRules) MaxDefendDice() int {
	return 1
}

func (sr *SingleDieRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	if attackerRolls[0] > defenderRolls[0] {
		return 0, 1
	}
	return 1, 0
}

// StandardRules is the tabletop variant: up to 3 attack dice against up to 2
// defence dice, compared pairwise from the highest.
type StandardRules struct {
	MaxAttack int
	MaxDefend int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MaxAttack: 3,
		MaxDefend: 2,
	}
}

func (sr *StandardRules) Name() string {
	return StandardRulesName
}

func (sr *StandardRules) MaxAttackDice() int {
	return sr.MaxAttack
}

func (sr *StandardRules) MaxDefendDice() int {
	return sr.MaxDefend
}

func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}
