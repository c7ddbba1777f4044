package experiments

import (
	"time"

	"cribbage/agent"
	"cribbage/config"
	"cribbage/engine"
	"cribbage/experiments/metrics"
	"cribbage/game"

	"github.com/rs/zerolog/log"
)

// Throughput is the simulation rate observed for one action type.
type Throughput struct {
	Action      game.ActionType
	Decisions   int
	Simulations int
	Duration    time.Duration
}

func (t Throughput) PerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Simulations) / t.Duration.Seconds()
}

// RunThroughputExperiment plays the configured Monte Carlo agent against
// itself and reports how many simulations per second each decision type runs.
func RunThroughputExperiment(cfg *config.Config) []Throughput {
	mc := metrics.AgentConfig{
		ID:                 1,
		Kind:               metrics.MonteCarloAgent,
		DiscardSimulations: cfg.DiscardSimulations,
		PeggingSimulations: cfg.PeggingSimulations,
	}
	rules := cfg.Rules()

	var moves []metrics.MoveMetric
	for i := 0; i < cfg.Games; i++ {
		agents := [game.NumPlayers]agent.Agent{newAgent(mc, rules), newAgent(mc, rules)}
		_, _, mm := engine.LocalEngine(agents, rules, cfg.Seed+uint64(i), game.Player(i%game.NumPlayers)).Run()
		moves = append(moves, mm...)
	}

	result := Summarize(moves)
	for _, t := range result {
		log.Info().
			Str("action", t.Action.String()).
			Int("decisions", t.Decisions).
			Int("simulations", t.Simulations).
			Float64("per_second", t.PerSecond()).
			Msg("throughput")
	}
	return result
}

// Summarize totals move metrics for discards and pegging plays.
func Summarize(moves []metrics.MoveMetric) []Throughput {
	result := []Throughput{{Action: game.DiscardAction}, {Action: game.PlayAction}}
	for _, m := range moves {
		i := 0
		if m.Action != game.DiscardAction {
			i = 1
		}
		result[i].Decisions++
		result[i].Simulations += m.Simulations
		result[i].Duration += m.Duration
	}
	return result
}
