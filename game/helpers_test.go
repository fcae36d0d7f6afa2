package game

import "fmt"

// scriptedRNG replays fixed draws.
type scriptedRNG struct {
	draws []int
}

func (s *scriptedRNG) Intn(n int) int {
	if len(s.draws) == 0 {
		panic("scriptedRNG: out of draws")
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("scriptedRNG: draw %d outside [0, %d)", v, n))
	}
	return v
}

// dice scripts die faces (1..6).
func dice(faces ...int) *scriptedRNG {
	draws := make([]int, len(faces))
	for i, f := range faces {
		draws[i] = f - 1
	}
	return &scriptedRNG{draws: draws}
}

// worldOf builds a world of capacity slots with the given territories.
func worldOf(capacity int, territories map[int]Territory) *World {
	w := &World{slots: make([]*Territory, capacity)}
	for i, t := range territories {
		t := t
		w.slots[i] = &t
	}
	return w
}

// ownedBy builds n territories for faction starting at slot from.
func ownedBy(territories map[int]Territory, faction Faction, from, n int) {
	for i := from; i < from+n; i++ {
		territories[i] = Territory{Name: fmt.Sprintf("T-%02d", i+1), Faction: faction, Troops: 2}
	}
}
