package experiments

import (
	"path/filepath"
	"testing"
	"time"

	"cribbage/config"
	"cribbage/experiments/metrics"
	"cribbage/game"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Seed:               3,
		DiscardSimulations: 5,
		PeggingSimulations: 5,
		HouseBonus:         true,
		MaxScore:           121,
		Games:              2,
		OutputDir:          t.TempDir(),
	}
}

func TestRunExperiment(t *testing.T) {
	cfg := testConfig(t)
	small := metrics.AgentConfig{ID: 1, Kind: metrics.MonteCarloAgent, DiscardSimulations: 5, PeggingSimulations: 5}
	matchUps := [][game.NumPlayers]metrics.AgentConfig{{baseline, small}}

	dir, err := runExperiment("smoke", cfg, []metrics.AgentConfig{baseline, small}, matchUps)

	require.NoError(t, err)
	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, file))
	}
	require.Equal(t, filepath.Join(cfg.OutputDir, "smoke"), filepath.Dir(dir))
}

func TestNewAgent(t *testing.T) {
	rules := game.NewStandardRules()

	require.NotNil(t, newAgent(baseline, rules))
	require.NotNil(t, newAgent(metrics.AgentConfig{Kind: metrics.MonteCarloAgent, DiscardSimulations: 1, PeggingSimulations: 1}, rules))
	require.Panics(t, func() { newAgent(metrics.AgentConfig{Kind: "random"}, rules) })
}

func TestSummarize(t *testing.T) {
	moves := []metrics.MoveMetric{
		{SearchMetric: metrics.SearchMetric{Action: game.DiscardAction, Simulations: 100, Duration: time.Second}},
		{SearchMetric: metrics.SearchMetric{Action: game.PlayAction, Simulations: 30, Duration: time.Second}},
		{SearchMetric: metrics.SearchMetric{Action: game.PlayAction, Simulations: 10, Duration: time.Second}},
	}

	got := Summarize(moves)

	require.Equal(t, 1, got[0].Decisions)
	require.Equal(t, 100.0, got[0].PerSecond())
	require.Equal(t, 2, got[1].Decisions)
	require.Equal(t, 20.0, got[1].PerSecond())
	require.Zero(t, Throughput{}.PerSecond())
}

func TestRunThroughputExperiment(t *testing.T) {
	cfg := testConfig(t)
	cfg.Games = 1

	got := RunThroughputExperiment(cfg)

	require.Len(t, got, 2)
	require.Positive(t, got[0].Decisions)
	require.Equal(t, got[0].Decisions*15*cfg.DiscardSimulations, got[0].Simulations,
		"Each discard simulates every split")
}
