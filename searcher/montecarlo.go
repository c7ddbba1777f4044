package searcher

import (
	"cribbage/experiments/metrics"
	"cribbage/game"
)

type Option func(m *MonteCarlo)

// MonteCarlo chooses discards and pegging plays by averaging sampled outcomes.
// It keeps no state between decisions: given the same random stream and the
// same cards, it returns the same choice.
type MonteCarlo struct {
	rules              game.Rules
	discardSimulations int
	peggingSimulations int
	cribWeight         float64
	metrics            metrics.Collector
}

func WithDiscardSimulations(simulations int) Option {
	return func(m *MonteCarlo) {
		if simulations > 0 {
			m.discardSimulations = simulations
		}
	}
}

func WithPeggingSimulations(simulations int) Option {
	return func(m *MonteCarlo) {
		if simulations > 0 {
			m.peggingSimulations = simulations
		}
	}
}

func WithCribWeight(weight float64) Option {
	return func(m *MonteCarlo) {
		if weight > 0 {
			m.cribWeight = weight
		}
	}
}

func WithMetrics() Option {
	return func(m *MonteCarlo) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMonteCarlo(rules game.Rules, options ...Option) *MonteCarlo {
	if rules == nil {
		panic("Must specify game rules")
	}
	m := &MonteCarlo{ // Default values
		rules:              rules,
		discardSimulations: DefaultDiscardSimulations,
		peggingSimulations: DefaultPeggingSimulations,
		cribWeight:         OpponentCribWeight,
		metrics:            metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MonteCarlo) DiscardSimulations() int {
	return m.discardSimulations
}

func (m *MonteCarlo) PeggingSimulations() int {
	return m.peggingSimulations
}
