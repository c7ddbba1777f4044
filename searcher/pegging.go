package searcher

import (
	"math"
	"strings"

	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/random"

	"github.com/rs/zerolog/log"
)

// PeggingMove is the chosen card, or OK false when the mover has no legal play
// and must declare Go.
type PeggingMove struct {
	Card  game.Card
	OK    bool
	Value float64 // Average point difference in the mover's favour
}

// ChoosePeggingMove evaluates each legal play for the player on turn. The
// opponent's hand is sampled from the cards the mover has not seen, then the
// rest of the round is rolled out with both sides playing greedily.
func (m *MonteCarlo) ChoosePeggingMove(state game.PeggingState, rng random.Source) (PeggingMove, metrics.SearchMetric) {
	me := state.Turn
	opp := me.Opponent()
	legal := game.LegalPlays(state.Hands[me], state.Total)
	m.metrics.Start(game.PlayAction, len(legal))
	if len(legal) == 0 {
		return PeggingMove{}, m.metrics.Complete(0)
	}

	pool := game.Unseen(state.Seen, state.Played, state.Hands[me])
	oppCount := len(state.Hands[opp])

	best := PeggingMove{Value: math.Inf(-1)}
	for _, card := range legal {
		sum := 0
		for i := 0; i < m.peggingSimulations; i++ {
			sim := state
			sim.Hands[opp] = random.Sample(rng, pool, oppCount)
			sum += rollout(sim, card)
			m.metrics.AddSimulation()
		}
		if value := float64(sum) / float64(m.peggingSimulations); value > best.Value {
			best = PeggingMove{Card: card, OK: true, Value: value}
		}
	}

	log.Debug().
		Stringer("card", best.Card).
		Int("total", state.Total).
		Float64("value", best.Value).
		Msg("chose pegging move")
	return best, m.metrics.Complete(best.Value)
}

// rollout plays first for the player on turn, then finishes the round with
// greedy play on both sides. It returns the mover's points minus the
// opponent's. Reaching 31 ends the rollout with a bonus point to whoever hit it.
func rollout(state game.PeggingState, first game.Card) int {
	me := state.Turn
	net := 0
	credit := func(p game.Player, points int) {
		if p == me {
			net += points
		} else if p != game.NoPlayer {
			net -= points
		}
	}

	card, ok := first, true
	for !state.Done() {
		mover := state.Turn
		if !ok {
			next, award, err := state.Go(mover)
			if err != nil {
				panic(err)
			}
			credit(award.Player, award.Points)
			state = next
		} else {
			hits31 := state.Total+card.Value() == game.MaxPeggingTotal
			next, points, err := state.Play(mover, card)
			if err != nil {
				panic(err)
			}
			credit(mover, points)
			if hits31 {
				credit(mover, 1)
				return net
			}
			state = next
		}
		card, ok = GreedyPlay(state.Hands[state.Turn], state.Stack, state.Total)
	}
	return net
}

// GreedyPlay picks the legal card that pegs the most points right now,
// preferring the higher resulting total on ties. ok is false when no card fits.
func GreedyPlay(hand []game.Card, stack []game.Card, total int) (card game.Card, ok bool) {
	bestPoints, bestTotal := -1, -1
	for _, c := range game.LegalPlays(hand, total) {
		newTotal := total + c.Value()
		next := append(append(make([]game.Card, 0, len(stack)+1), stack...), c)
		points := game.PeggingPoints(next, newTotal)
		if points > bestPoints || (points == bestPoints && newTotal > bestTotal) {
			card, ok = c, true
			bestPoints, bestTotal = points, newTotal
		}
	}
	return card, ok
}

type cards []game.Card

func (cs cards) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
