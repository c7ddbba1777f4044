package engine

import (
	"cribbage/experiments/metrics"
	"cribbage/game"
)

// MaxRounds bounds a game that never reaches the maximum score. Real games
// end in well under thirty rounds.
const MaxRounds = 200

type Engine interface {
	// Run plays a game till someone reaches the maximum score or MaxRounds is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
