package metrics

import (
	"sync/atomic"
	"time"

	"war/game"
)

type GameMetric struct {
	Player        string
	Mission       int
	Target        string
	Rules         string
	Rounds        int
	Attacks       int
	Conquests     int
	Violations    int
	VictoryChecks int
	Won           bool
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

type Collector interface {
	Start(player game.Faction, mission game.Mission, rules string)
	AddRound()
	AddAttack(conquered bool)
	AddViolation()
	AddVictoryCheck()
	Complete(won bool) GameMetric
}

type collector struct {
	player        game.Faction
	mission       game.Mission
	rules         string
	startTime     time.Time
	rounds        atomic.Int32
	attacks       atomic.Int32
	conquests     atomic.Int32
	violations    atomic.Int32
	victoryChecks atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(player game.Faction, mission game.Mission, rules string) {
	m.startTime = time.Now()
	m.player = player
	m.mission = mission
	m.rules = rules
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) AddAttack(conquered bool) {
	m.attacks.Add(1)
	if conquered {
		m.conquests.Add(1)
	}
}

func (m *collector) AddViolation() {
	m.violations.Add(1)
}

func (m *collector) AddVictoryCheck() {
	m.victoryChecks.Add(1)
}

func (m *collector) Complete(won bool) GameMetric {
	end := time.Now()
	target := ""
	if m.mission.Target.Valid() {
		target = m.mission.Target.String()
	}
	return GameMetric{
		Player:        m.player.String(),
		Mission:       int(m.mission.ID),
		Target:        target,
		Rules:         m.rules,
		Rounds:        int(m.rounds.Load()),
		Attacks:       int(m.attacks.Load()),
		Conquests:     int(m.conquests.Load()),
		Violations:    int(m.violations.Load()),
		VictoryChecks: int(m.victoryChecks.Load()),
		Won:           won,
		StartTime:     m.startTime,
		EndTime:       end,
		Duration:      end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(player game.Faction, mission game.Mission, rules string) {}
func (m *dummyCollector) AddRound()                                                     {}
func (m *dummyCollector) AddAttack(conquered bool)                                      {}
func (m *dummyCollector) AddViolation()                                                 {}
func (m *dummyCollector) AddVictoryCheck()                                              {}
func (m *dummyCollector) Complete(won bool) GameMetric                                  { return GameMetric{} }
