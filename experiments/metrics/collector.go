package metrics

import (
	"cribbage/game"
	"time"

	"github.com/google/uuid"
)

// SearchMetric describes one decision made by a Monte Carlo searcher.
type SearchMetric struct {
	Action      game.ActionType
	Duration    time.Duration
	Simulations int
	Candidates  int
	Value       float64 // Expected value of the chosen candidate
}

type MoveMetric struct {
	Step   int
	Round  int
	Player game.Player
	SearchMetric
}

type GameMetric struct {
	ID             uuid.UUID
	Seed           uint64
	StartingDealer game.Player
	Winner         game.Player
	Scores         [game.NumPlayers]int
	Rounds         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(action game.ActionType, candidates int)
	AddSimulation()
	Complete(value float64) SearchMetric
}

type collector struct {
	action      game.ActionType
	candidates  int
	startTime   time.Time
	simulations int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(action game.ActionType, candidates int) {
	m.startTime = time.Now()
	m.action = action
	m.candidates = candidates
	m.simulations = 0
}

func (m *collector) AddSimulation() {
	m.simulations++
}

func (m *collector) Complete(value float64) SearchMetric {
	return SearchMetric{
		Action:      m.action,
		Duration:    time.Since(m.startTime),
		Simulations: m.simulations,
		Candidates:  m.candidates,
		Value:       value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(action game.ActionType, candidates int) {}
func (m *dummyCollector) AddSimulation()                               {}
func (m *dummyCollector) Complete(value float64) SearchMetric          { return SearchMetric{} }
