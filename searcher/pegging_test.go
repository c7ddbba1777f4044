package searcher

import (
	"testing"

	"cribbage/game"
	"cribbage/random"

	"github.com/stretchr/testify/require"
)

func peggingState(stack, mine, theirs, seen string) game.PeggingState {
	s := game.NewPeggingState([game.NumPlayers][]game.Card{
		game.MustParseCards(mine),
		game.MustParseCards(theirs),
	}, game.Player1, game.MustParseCards(seen))
	s.Stack = game.MustParseCards(stack)
	s.Played = game.MustParseCards(stack)
	for _, c := range s.Stack {
		s.Total += c.Value()
	}
	if len(s.Stack) > 0 {
		s.LastPlayer = game.Player2
	}
	return s
}

func TestGreedyPlay(t *testing.T) {
	t.Run("preferring the most points", func(t *testing.T) {
		card, ok := GreedyPlay(game.MustParseCards("2C 5D 9H"), game.MustParseCards("KS"), 10)

		require.True(t, ok)
		require.Equal(t, game.MustParseCards("5D")[0], card, "Fifteen should beat a pointless play")
	})

	t.Run("breaking a tie between a pair and fifteen", func(t *testing.T) {
		card, ok := GreedyPlay(game.MustParseCards("2C 8D 7H"), game.MustParseCards("7S"), 7)

		require.True(t, ok)
		require.Equal(t, game.MustParseCards("8D")[0], card, "Both peg 2, so the higher total should win")
	})

	t.Run("breaking ties with the higher total", func(t *testing.T) {
		card, ok := GreedyPlay(game.MustParseCards("2C 4D 3H"), game.MustParseCards("KS"), 10)

		require.True(t, ok)
		require.Equal(t, game.MustParseCards("4D")[0], card)
	})

	t.Run("reporting no legal play", func(t *testing.T) {
		_, ok := GreedyPlay(game.MustParseCards("KC QD"), game.MustParseCards("KS JD AH"), 25)

		require.False(t, ok)
	})
}

func TestRollout(t *testing.T) {
	t.Run("opponent fifteen and last card count against the mover", func(t *testing.T) {
		s := peggingState("", "5H", "10C", "")

		require.Equal(t, -3, rollout(s, game.MustParseCards("5H")[0]))
	})

	t.Run("reaching thirty-one ends the rollout with a bonus", func(t *testing.T) {
		s := peggingState("KS JD QH", "AC 9D", "5D 6C", "")

		require.Equal(t, 3, rollout(s, game.MustParseCards("AC")[0]))
	})

	t.Run("go point goes to the last player", func(t *testing.T) {
		// 2C to 29, the opponent's 5D cannot go, nor can the mover's KH, so the mover pegs the go
		// point; the opponent leads 5D and the mover's KH pegs fifteen and the last card.
		s := peggingState("KS JD 7H", "2C KH", "5D", "")

		require.Equal(t, 1+2+1, rollout(s, game.MustParseCards("2C")[0]))
	})
}

func TestChoosePeggingMove(t *testing.T) {
	t.Run("signalling no play", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithPeggingSimulations(10))
		s := peggingState("KS JD 5H", "KC QC", "2D", "5S")

		got, _ := m.ChoosePeggingMove(s, random.New(1))

		require.False(t, got.OK, "No card fits under 31")
	})

	t.Run("taking thirty-one", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithPeggingSimulations(100), WithMetrics())
		s := peggingState("KS JD AH", "10H 3C", "2D 4S", "5S")

		got, metric := m.ChoosePeggingMove(s, random.New(1))

		require.True(t, got.OK)
		require.Equal(t, game.MustParseCards("10H")[0], got.Card)
		require.InDelta(t, 3.0, got.Value, 1e-9, "Thirty-one pegs 2 plus the rollout bonus")
		require.Equal(t, 2, metric.Candidates)
		require.Equal(t, 200, metric.Simulations)
	})

	t.Run("same seed and state yields the same move", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithPeggingSimulations(60))
		s := peggingState("7C", "8D 2H 6S QC", "AD 4S 9H", "5S JC 3D")

		first, _ := m.ChoosePeggingMove(s, random.New(77))
		second, _ := m.ChoosePeggingMove(s, random.New(77))

		require.Equal(t, first, second)
	})

	t.Run("not looking at the opponent's real hand", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithPeggingSimulations(60))
		a := peggingState("7C", "8D 2H 6S QC", "AD 4S 9H", "5S JC 3D")
		b := peggingState("7C", "8D 2H 6S QC", "KD KS KH", "5S JC 3D")

		first, _ := m.ChoosePeggingMove(a, random.New(5))
		second, _ := m.ChoosePeggingMove(b, random.New(5))

		require.Equal(t, first, second, "Only the opponent's card count should matter")
	})
}
