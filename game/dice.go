package game

import (
	"sort"
	"time"

	"war/meta"

	"golang.org/x/exp/rand"
)

// RNG produces uniformly distributed integers in [0, n).
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a seeded generator. A zero seed is replaced by the current time.
func NewRNG(seed uint64) RNG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// RollDie returns a value in 1..6.
func RollDie(rng RNG) int {
	return rng.Intn(meta.DICE_SIDES) + 1
}

// rollDice rolls num dice, highest first
func rollDice(rng RNG, num int) []int {
	rolls := make([]int, num)
	for i := 0; i < num; i++ {
		rolls[i] = RollDie(rng)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}

// pick returns a uniformly chosen element of choices.
func pick[T any](rng RNG, choices []T) T {
	return choices[rng.Intn(len(choices))]
}
