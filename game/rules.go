package game

import "fmt"

// Rules decides how many dice each side throws and how rolls translate into losses.
type Rules interface {
	Name() string
	MaxAttackDice() int
	MaxDefendDice() int
	// DetermineAttackOutcome receives both sides' rolls sorted highest first.
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
}

const (
	SingleDieRulesName = "single-die"
	StandardRulesName  = "standard"
)

// ParseRules returns the rule set registered under name.
func ParseRules(name string) (Rules, error) {
	switch name {
	case "", SingleDieRulesName:
		return NewSingleDieRules(), nil
	case StandardRulesName:
		return NewStandardRules(), nil
	default:
		return nil, fmt.Errorf("unknown rules %q", name)
	}
}
