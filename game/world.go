package game

import (
	"fmt"

	"war/meta"
)

// Territory is a populated slot of the world. Troops is always at least 1.
type Territory struct {
	Name    string
	Faction Faction
	Troops  int
}

// TerritoryView is a read-only copy of a populated slot, for rendering.
type TerritoryView struct {
	Index   int
	Name    string
	Faction Faction
	Troops  int
}

// World holds every slot of the map. A nil slot is empty (not in play);
// a non-nil slot is owned by exactly one faction.
type World struct {
	slots     []*Territory
	destroyed bool
}

type worldOptions struct {
	capacity int
	deal     int
}

// WorldOption customises the shape of a new world.
type WorldOption func(o *worldOptions)

func WithCapacity(capacity int) WorldOption {
	return func(o *worldOptions) {
		o.capacity = capacity
	}
}

func WithInitialDeal(deal int) WorldOption {
	return func(o *worldOptions) {
		o.deal = deal
	}
}

// NewWorld allocates the slot collection and deals the initial territories:
// names T-01.., factions cycling player first, troops drawn from 2..4.
func NewWorld(player Faction, rng RNG, options ...WorldOption) (*World, error) {
	o := worldOptions{ // Default values
		capacity: meta.MAX_TERRITORIES,
		deal:     meta.INITIAL_TERRITORIES,
	}
	for _, option := range options {
		option(&o)
	}
	if o.capacity <= 0 || o.deal < 0 || o.deal > o.capacity {
		return nil, fmt.Errorf("%w: deal of %d territories over %d slots", ErrAllocation, o.deal, o.capacity)
	}
	if !player.Valid() {
		return nil, fmt.Errorf("%w: invalid player faction %d", ErrAllocation, int(player))
	}

	w := &World{slots: make([]*Territory, o.capacity)}
	order := dealingOrder(player)
	span := meta.MAX_INITIAL_TROOPS - meta.MIN_INITIAL_TROOPS + 1
	for i := 0; i < o.deal; i++ {
		w.slots[i] = &Territory{
			Name:    fmt.Sprintf("T-%02d", i+1),
			Faction: order[i%len(order)],
			Troops:  meta.MIN_INITIAL_TROOPS + rng.Intn(span),
		}
	}
	return w, nil
}

// Destroy releases the slots. Any later use of w panics.
func (w *World) Destroy() {
	w.mustBeAlive()
	w.slots = nil
	w.destroyed = true
}

func (w *World) mustBeAlive() {
	if w == nil || w.destroyed {
		panic("game: use of destroyed world")
	}
}

// Capacity returns the fixed number of slots.
func (w *World) Capacity() int {
	w.mustBeAlive()
	return len(w.slots)
}

// Territory returns a copy of the slot at index and whether it is populated.
func (w *World) Territory(index int) (Territory, bool) {
	w.mustBeAlive()
	if index < 0 || index >= len(w.slots) || w.slots[index] == nil {
		return Territory{}, false
	}
	return *w.slots[index], true
}

// CountTerritories counts populated slots owned by faction.
func (w *World) CountTerritories(faction Faction) int {
	w.mustBeAlive()
	count := 0
	for _, t := range w.slots {
		if t != nil && t.Faction == faction {
			count++
		}
	}
	return count
}

// FactionEliminated reports whether faction holds no populated slot.
func (w *World) FactionEliminated(faction Faction) bool {
	return w.CountTerritories(faction) == 0
}

// Populated counts slots in play, whatever their owner.
func (w *World) Populated() int {
	w.mustBeAlive()
	count := 0
	for _, t := range w.slots {
		if t != nil {
			count++
		}
	}
	return count
}

// Snapshot lists populated slots in index order.
func (w *World) Snapshot() []TerritoryView {
	w.mustBeAlive()
	views := []TerritoryView{}
	for i, t := range w.slots {
		if t == nil {
			continue
		}
		views = append(views, TerritoryView{
			Index:   i,
			Name:    t.Name,
			Faction: t.Faction,
			Troops:  t.Troops,
		})
	}
	return views
}
