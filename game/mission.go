package game

import (
	"fmt"

	"war/meta"
)

// MissionID enumerates the victory conditions. Only the first two are implemented.
type MissionID int

const (
	ConquerTerritories MissionID = iota + 1
	DestroyFaction
	ConquerContinents
	ConquerEighteen
)

// MissionIDs lists every declared mission.
var MissionIDs = []MissionID{ConquerTerritories, DestroyFaction, ConquerContinents, ConquerEighteen}

// Mission is assigned once per game. Target only matters for DestroyFaction.
type Mission struct {
	ID     MissionID
	Target Faction
}

// AssignMission draws a mission uniformly; a destruction mission also draws
// its target among player's opponents.
func AssignMission(rng RNG, player Faction) Mission {
	m := Mission{ID: pick(rng, MissionIDs)}
	if m.ID == DestroyFaction {
		m.Target = pick(rng, Opponents(player))
	}
	return m
}

// Implemented reports whether the mission can ever be satisfied.
func (m Mission) Implemented() bool {
	return m.ID == ConquerTerritories || m.ID == DestroyFaction
}

func (m Mission) Describe() string {
	switch m.ID {
	case ConquerTerritories:
		return fmt.Sprintf("Conquer %d territories.", meta.TERRITORY_GOAL)
	case DestroyFaction:
		return fmt.Sprintf("Destroy the %s army and hold %d territories.", m.Target, meta.DESTRUCTION_MIN_TERRITORIES)
	case ConquerContinents:
		return "Conquer 2 continents (not implemented)."
	case ConquerEighteen:
		return "Conquer 18 territories (not implemented)."
	default:
		return fmt.Sprintf("Unknown mission %d.", int(m.ID))
	}
}

// Status separates an inert mission from one that is merely not met yet.
type Status int

const (
	StatusInProgress Status = iota
	StatusSatisfied
	StatusUnimplemented
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusSatisfied:
		return "satisfied"
	case StatusUnimplemented:
		return "unimplemented"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Progress details a victory check.
type Progress struct {
	Mission          Mission
	Status           Status
	Territories      int // held by the player
	Required         int
	TargetEliminated bool
}

// EvaluateVictory reports whether player has accomplished m on w. It never mutates w.
func EvaluateVictory(w *World, player Faction, m Mission) (bool, Progress) {
	p := Progress{
		Mission:     m,
		Status:      StatusInProgress,
		Territories: w.CountTerritories(player),
	}
	switch m.ID {
	case ConquerTerritories:
		p.Required = meta.TERRITORY_GOAL
		if p.Territories >= p.Required {
			p.Status = StatusSatisfied
		}
	case DestroyFaction:
		p.Required = meta.DESTRUCTION_MIN_TERRITORIES
		p.TargetEliminated = m.Target.Valid() && w.FactionEliminated(m.Target)
		if p.TargetEliminated && p.Territories >= p.Required {
			p.Status = StatusSatisfied
		}
	default:
		p.Status = StatusUnimplemented
	}
	return p.Status == StatusSatisfied, p
}
