package game

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when the world cannot be built. The game cannot proceed without it.
var ErrAllocation = errors.New("cannot allocate world")

// ErrRuleViolation matches every *RuleViolation through errors.Is.
var ErrRuleViolation = errors.New("rule violation")

// ViolationKind names the attack precondition that was broken.
type ViolationKind int

const (
	IndexOutOfRange ViolationKind = iota
	SelfAttack
	EmptyTerritory
	NotOwned
	InsufficientTroops
	SameFaction
)

func (k ViolationKind) String() string {
	switch k {
	case IndexOutOfRange:
		return "index out of range"
	case SelfAttack:
		return "self attack"
	case EmptyTerritory:
		return "empty territory"
	case NotOwned:
		return "attacker not owned by player"
	case InsufficientTroops:
		return "insufficient troops"
	case SameFaction:
		return "same faction"
	default:
		return fmt.Sprintf("violation(%d)", int(k))
	}
}

// RuleViolation reports an attack that was refused. The world is left untouched.
type RuleViolation struct {
	Kind     ViolationKind
	Attacker int
	Defender int
}

func (v *RuleViolation) Error() string {
	return fmt.Sprintf("cannot attack %d -> %d: %s", v.Attacker, v.Defender, v.Kind)
}

func (v *RuleViolation) Is(target error) bool {
	return target == ErrRuleViolation
}

func violation(kind ViolationKind, attackerID, defenderID int) *RuleViolation {
	return &RuleViolation{Kind: kind, Attacker: attackerID, Defender: defenderID}
}
