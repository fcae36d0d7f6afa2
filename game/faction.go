package game

import (
	"fmt"
	"strings"

	"war/utils"
)

// Faction identifies a side that can own territories.
type Faction int

const (
	NoFaction Faction = iota
	Blue
	Green
	Black
	Yellow
)

var factionNames = []string{"", "blue", "green", "black", "yellow"}

// Factions lists every faction in dealing order.
var Factions = []Faction{Blue, Green, Black, Yellow}

func (f Faction) String() string {
	if !f.Valid() {
		return "NONE"
	}
	return strings.ToUpper(factionNames[f])
}

// Valid reports whether f is one of the playable factions.
func (f Faction) Valid() bool {
	return f > NoFaction && int(f) < len(factionNames)
}

// ParseFaction resolves a faction by its case-insensitive name.
func ParseFaction(name string) (Faction, error) {
	idx := utils.FindIndex(factionNames, strings.ToLower(strings.TrimSpace(name)))
	if idx <= 0 {
		return NoFaction, fmt.Errorf("unknown faction %q", name)
	}
	return Faction(idx), nil
}

// Opponents returns every faction except player, in dealing order.
func Opponents(player Faction) []Faction {
	return utils.Filter(Factions, func(f Faction) bool { return f != player })
}

// dealingOrder cycles the player first, then the opponents.
func dealingOrder(player Faction) []Faction {
	return append([]Faction{player}, Opponents(player)...)
}
