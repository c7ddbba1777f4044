package config

import (
	"os"
	"path/filepath"
	"testing"

	"cribbage/game"
	"cribbage/searcher"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults from the environment", func(t *testing.T) {
		c, err := Load("")

		require.NoError(t, err)
		require.Equal(t, "info", c.LogLevel)
		require.Equal(t, 500, c.DiscardSimulations)
		require.Equal(t, 200, c.PeggingSimulations)
		require.True(t, c.HouseBonus)
		require.Equal(t, 120, c.MaxScore)
		require.Equal(t, 30, c.Games)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CRIBBAGE_DISCARD_SIMULATIONS", "1000")
		t.Setenv("CRIBBAGE_HOUSE_BONUS", "false")
		t.Setenv("CRIBBAGE_SEED", "77")

		c, err := Load("")

		require.NoError(t, err)
		require.Equal(t, 1000, c.DiscardSimulations)
		require.False(t, c.HouseBonus)
		require.Equal(t, uint64(77), c.Seed)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		data := "log-level: debug\npegging-simulations: 60\ngames: 4\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		c, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "debug", c.LogLevel)
		require.Equal(t, 60, c.PeggingSimulations)
		require.Equal(t, 4, c.Games)
		require.Equal(t, 500, c.DiscardSimulations, "Missing keys should take defaults")
	})

	t.Run("out of range counts are rejected", func(t *testing.T) {
		t.Setenv("CRIBBAGE_PEGGING_SIMULATIONS", "10")

		_, err := Load("")

		require.Error(t, err)
		require.Panics(t, func() { MustLoad("") })
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))

		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{DiscardSimulations: 200, PeggingSimulations: 500, MaxScore: 61, Games: 1}
	require.NoError(t, valid.Validate(), "Bounds should be inclusive")

	tooMany := valid
	tooMany.DiscardSimulations = 2001
	require.Error(t, tooMany.Validate())

	noGames := valid
	noGames.Games = 0
	require.Error(t, noGames.Validate())
}

func TestMapping(t *testing.T) {
	c := Config{DiscardSimulations: 300, PeggingSimulations: 80, HouseBonus: false, MaxScore: 61}

	rules := c.Rules()
	require.False(t, rules.HouseBonus())
	require.Equal(t, 61, rules.MaxScore())

	mc := searcher.NewMonteCarlo(game.NewStandardRules(), c.SearcherOptions()...)
	require.Equal(t, 300, mc.DiscardSimulations())
	require.Equal(t, 80, mc.PeggingSimulations())
}
