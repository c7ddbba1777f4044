package agent

import (
	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/random"
	"cribbage/searcher"
)

type monteCarloAgent struct {
	mc *searcher.MonteCarlo
}

// NewMonteCarloAgent returns an agent that searches every decision.
func NewMonteCarloAgent(mc *searcher.MonteCarlo) Agent {
	return monteCarloAgent{mc: mc}
}

func (a monteCarloAgent) Discard(hand []game.Card, seen []game.Card, isDealer bool, rng random.Source) (searcher.DiscardChoice, metrics.SearchMetric) {
	return a.mc.ChooseDiscard(hand, seen, isDealer, rng)
}

func (a monteCarloAgent) Peg(state game.PeggingState, rng random.Source) (searcher.PeggingMove, metrics.SearchMetric) {
	return a.mc.ChoosePeggingMove(state, rng)
}
