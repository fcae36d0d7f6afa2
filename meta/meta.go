// meta/meta.go
package meta

// MAX_TERRITORIES defines the fixed capacity of the territory collection.
const MAX_TERRITORIES = 20

// INITIAL_TERRITORIES defines how many slots are populated in the initial deal.
const INITIAL_TERRITORIES = 5

// MIN_INITIAL_TROOPS and MAX_INITIAL_TROOPS bound the troops dealt to each initial territory.
const MIN_INITIAL_TROOPS = 2
const MAX_INITIAL_TROOPS = 4

// DICE_SIDES defines the number of faces on a die.
const DICE_SIDES = 6

// TERRITORY_GOAL is the number of territories to hold for the territory-count mission.
const TERRITORY_GOAL = 10

// DESTRUCTION_MIN_TERRITORIES is the number of territories to hold for the destruction mission.
const DESTRUCTION_MIN_TERRITORIES = 3

// MAX_ROUNDS caps the rounds of a simulated game.
const MAX_ROUNDS = 300
