package searcher

import (
	"math"

	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/random"

	"github.com/rs/zerolog/log"
)

type DiscardChoice struct {
	Keep    []game.Card
	Discard []game.Card
	Value   float64 // Expected hand points plus the signed crib contribution
}

// ChooseDiscard evaluates every 2-of-6 discard. For each one it samples a
// starter and the opponent's two crib cards from the cards this player has not
// seen, then averages the kept hand's score plus the crib's score, which is
// negated and discounted when the opponent owns the crib. Ties keep the first
// discard in enumeration order.
func (m *MonteCarlo) ChooseDiscard(hand []game.Card, seen []game.Card, isDealer bool, rng random.Source) (DiscardChoice, metrics.SearchMetric) {
	if len(hand) != game.DealSize {
		panic("discard selection needs a six card hand")
	}
	pool := game.Unseen(hand, seen)
	candidates := DiscardCandidates(hand)
	m.metrics.Start(game.DiscardAction, len(candidates))

	best := DiscardChoice{Value: math.Inf(-1)}
	for _, candidate := range candidates {
		sum := 0.0
		for i := 0; i < m.discardSimulations; i++ {
			sum += m.simulateDiscard(candidate, pool, isDealer, rng)
			m.metrics.AddSimulation()
		}
		if value := sum / float64(m.discardSimulations); value > best.Value {
			best = candidate
			best.Value = value
		}
	}

	log.Debug().
		Stringer("keep", cards(best.Keep)).
		Stringer("discard", cards(best.Discard)).
		Bool("dealer", isDealer).
		Float64("value", best.Value).
		Msg("chose discard")
	return best, m.metrics.Complete(best.Value)
}

func (m *MonteCarlo) simulateDiscard(candidate DiscardChoice, pool []game.Card, isDealer bool, rng random.Source) float64 {
	drawn := random.Sample(rng, pool, 3)
	starter, oppDiscard := drawn[0], drawn[1:]

	crib := make([]game.Card, 0, game.CribSize)
	if isDealer {
		crib = append(append(crib, candidate.Discard...), oppDiscard...)
	} else {
		crib = append(append(crib, oppDiscard...), candidate.Discard...)
	}

	value := float64(game.ScoreHand(candidate.Keep, starter, false, m.rules))
	cribScore := float64(game.ScoreHand(crib, starter, true, m.rules))
	if isDealer {
		return value + cribScore
	}
	return value - m.cribWeight*cribScore
}

// DiscardCandidates enumerates the 15 ways to split six cards into four kept
// and two discarded, in a stable order.
func DiscardCandidates(hand []game.Card) []DiscardChoice {
	var candidates []DiscardChoice
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			keep := make([]game.Card, 0, len(hand)-2)
			for k, c := range hand {
				if k != i && k != j {
					keep = append(keep, c)
				}
			}
			candidates = append(candidates, DiscardChoice{
				Keep:    keep,
				Discard: []game.Card{hand[i], hand[j]},
			})
		}
	}
	return candidates
}
