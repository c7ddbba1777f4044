package agent

import (
	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/random"
	"cribbage/searcher"
)

type Agent interface {
	// Discard splits a six card hand into the kept four and the two crib cards
	Discard(hand []game.Card, seen []game.Card, isDealer bool, rng random.Source) (searcher.DiscardChoice, metrics.SearchMetric)
	// Peg picks a card for the player on turn, or returns OK false to declare Go
	Peg(state game.PeggingState, rng random.Source) (searcher.PeggingMove, metrics.SearchMetric)
}
