package agent

import (
	"math"

	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/random"
	"cribbage/searcher"
)

type greedyAgent struct {
	rules game.Rules
}

// NewGreedyAgent returns a baseline agent that ignores the crib when
// discarding and pegs for immediate points, the same policy the searcher
// assumes for both sides in its rollouts. It never draws from the random stream.
func NewGreedyAgent(rules game.Rules) Agent {
	return greedyAgent{rules: rules}
}

// Discard keeps the four cards with the best average score over every
// starter that could still be cut.
func (a greedyAgent) Discard(hand []game.Card, seen []game.Card, isDealer bool, rng random.Source) (searcher.DiscardChoice, metrics.SearchMetric) {
	starters := game.Unseen(hand, seen)
	best := searcher.DiscardChoice{Value: math.Inf(-1)}
	for _, candidate := range searcher.DiscardCandidates(hand) {
		sum := 0
		for _, starter := range starters {
			sum += game.ScoreHand(candidate.Keep, starter, false, a.rules)
		}
		if value := float64(sum) / float64(len(starters)); value > best.Value {
			best = candidate
			best.Value = value
		}
	}
	return best, metrics.SearchMetric{Action: game.DiscardAction, Value: best.Value}
}

func (a greedyAgent) Peg(state game.PeggingState, rng random.Source) (searcher.PeggingMove, metrics.SearchMetric) {
	card, ok := searcher.GreedyPlay(state.Hands[state.Turn], state.Stack, state.Total)
	return searcher.PeggingMove{Card: card, OK: ok}, metrics.SearchMetric{Action: game.PlayAction}
}
