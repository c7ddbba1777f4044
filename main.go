package main

import (
	"flag"
	"os"

	"cribbage/agent"
	"cribbage/config"
	"cribbage/engine"
	"cribbage/experiments"
	"cribbage/game"
	"cribbage/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file, environment variables are used when empty")
	experiment := flag.String("experiment", "play", "One of play, budget or throughput")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *experiment {
	case "play":
		playGame(cfg)
	case "budget":
		if _, err := experiments.RunBudgetExperiment(cfg); err != nil {
			log.Fatal().Err(err).Msg("budget experiment failed")
		}
	case "throughput":
		experiments.RunThroughputExperiment(cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

// playGame pits the configured Monte Carlo agent against the greedy baseline.
func playGame(cfg *config.Config) {
	rules := cfg.Rules()
	mc := searcher.NewMonteCarlo(rules, append(cfg.SearcherOptions(), searcher.WithMetrics())...)
	agents := [game.NumPlayers]agent.Agent{agent.NewMonteCarloAgent(mc), agent.NewGreedyAgent(rules)}

	winner, gameMetric, moves := engine.LocalEngine(agents, rules, cfg.Seed, game.Player1).Run()

	log.Info().
		Str("winner", winner.String()).
		Ints("scores", gameMetric.Scores[:]).
		Int("rounds", gameMetric.Rounds).
		Int("moves", len(moves)).
		Dur("duration", gameMetric.Duration).
		Msg("monte carlo (Player1) against greedy (Player2)")
}
