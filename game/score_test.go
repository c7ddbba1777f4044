package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreboardAdd(t *testing.T) {
	t.Run("accumulating points", func(t *testing.T) {
		sb := NewScoreboard(NewStandardRules())

		require.Equal(t, 5, sb.Add(Player1, 5))
		require.Equal(t, 3, sb.Add(Player2, 3))

		require.Equal(t, [NumPlayers]int{5, 3}, sb.Points)
		require.False(t, sb.GameOver())
	})

	t.Run("clamping at the maximum ends the game", func(t *testing.T) {
		sb := NewScoreboard(NewStandardRules())
		sb.Points = [NumPlayers]int{118, 119}

		applied := sb.Add(Player1, 7)

		require.Equal(t, 2, applied, "Only the points up to the maximum should apply")
		require.Equal(t, DefaultMaxScore, sb.Points[Player1])
		require.True(t, sb.GameOver())
		require.Equal(t, Player1, sb.Winner)
	})

	t.Run("ignoring points after game over", func(t *testing.T) {
		sb := NewScoreboard(NewStandardRules())
		sb.Add(Player2, DefaultMaxScore)

		require.Zero(t, sb.Add(Player1, 10))
		require.Zero(t, sb.Add(Player2, 1))
		require.Equal(t, [NumPlayers]int{0, DefaultMaxScore}, sb.Points)
	})

	t.Run("honoring a custom maximum", func(t *testing.T) {
		sb := NewScoreboard(&StandardRules{TargetScore: 61})

		sb.Add(Player1, 70)

		require.Equal(t, 61, sb.Points[Player1])
		require.Equal(t, Player1, sb.Winner)
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
	require.Equal(t, "Player1", Player1.String())
	require.Equal(t, "none", NoPlayer.String())
}
