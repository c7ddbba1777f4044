package searcher

import (
	"testing"

	"cribbage/game"
	"cribbage/random"

	"github.com/stretchr/testify/require"
)

func TestDiscardCandidates(t *testing.T) {
	hand := game.MustParseCards("AC 2C 3C 4C 5C 6C")

	got := DiscardCandidates(hand)

	require.Len(t, got, 15, "Six cards should split 15 ways")
	require.Equal(t, game.MustParseCards("AC 2C"), got[0].Discard, "Enumeration should start with the first two cards")
	require.Equal(t, game.MustParseCards("3C 4C 5C 6C"), got[0].Keep)
	require.Equal(t, game.MustParseCards("5C 6C"), got[14].Discard, "Enumeration should end with the last two cards")
	seen := map[[2]game.Card]bool{}
	for _, c := range got {
		key := [2]game.Card{c.Discard[0], c.Discard[1]}
		require.False(t, seen[key], "Each discard should be enumerated once")
		seen[key] = true
		require.ElementsMatch(t, hand, append(append([]game.Card{}, c.Keep...), c.Discard...))
	}
}

func TestChooseDiscard(t *testing.T) {
	t.Run("keeping the obviously strong cards", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithDiscardSimulations(200))
		hand := game.MustParseCards("5C 5D 5H JS KD QH")

		got, _ := m.ChooseDiscard(hand, nil, false, random.New(7))

		require.Subset(t, got.Keep, game.MustParseCards("5C 5D 5H"), "Three fives should be kept")
		require.Len(t, got.Keep, game.HandSize)
		require.Len(t, got.Discard, 2)
		require.Greater(t, got.Value, 8.0, "Three fives and a ten card hold 14 points before the opponent's crib")
	})

	t.Run("same seed and hand yields the same discard", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithDiscardSimulations(50))
		hand := game.MustParseCards("2C 7D 8H 9S JC KD")

		for _, dealer := range []bool{true, false} {
			first, _ := m.ChooseDiscard(hand, nil, dealer, random.New(123))
			second, _ := m.ChooseDiscard(hand, nil, dealer, random.New(123))

			require.Equal(t, first, second, "Decision should be reproducible for dealer=%v", dealer)
		}
	})

	t.Run("recording search metrics", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithDiscardSimulations(10), WithMetrics())
		hand := game.MustParseCards("2C 7D 8H 9S JC KD")

		got, metric := m.ChooseDiscard(hand, nil, true, random.New(1))

		require.Equal(t, game.DiscardAction, metric.Action)
		require.Equal(t, 15, metric.Candidates)
		require.Equal(t, 150, metric.Simulations)
		require.Equal(t, got.Value, metric.Value)
	})

	t.Run("panics on a hand that is not six cards", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules())

		require.Panics(t, func() {
			m.ChooseDiscard(game.MustParseCards("2C 7D 8H 9S"), nil, true, random.New(1))
		})
	})
}

func TestNewMonteCarlo(t *testing.T) {
	t.Run("applying defaults", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules())

		require.Equal(t, DefaultDiscardSimulations, m.DiscardSimulations())
		require.Equal(t, DefaultPeggingSimulations, m.PeggingSimulations())
		require.Equal(t, OpponentCribWeight, m.cribWeight)
	})

	t.Run("ignoring non-positive options", func(t *testing.T) {
		m := NewMonteCarlo(game.NewStandardRules(), WithDiscardSimulations(0), WithPeggingSimulations(-5))

		require.Equal(t, DefaultDiscardSimulations, m.DiscardSimulations())
		require.Equal(t, DefaultPeggingSimulations, m.PeggingSimulations())
	})

	t.Run("panics without rules", func(t *testing.T) {
		require.Panics(t, func() { NewMonteCarlo(nil) })
	})
}
