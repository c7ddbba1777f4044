package experiments

import (
	"fmt"

	"cribbage/agent"
	"cribbage/config"
	"cribbage/engine"
	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/searcher"

	"github.com/rs/zerolog/log"
)

var baseline = metrics.AgentConfig{ID: 0, Kind: metrics.GreedyAgent}

// RunBudgetExperiment pairs Monte Carlo agents of increasing simulation
// budgets against the greedy baseline.
func RunBudgetExperiment(cfg *config.Config) (string, error) {
	budgetConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MonteCarloAgent, DiscardSimulations: config.MinDiscardSimulations, PeggingSimulations: config.MinPeggingSimulations},
		{ID: 2, Kind: metrics.MonteCarloAgent, DiscardSimulations: cfg.DiscardSimulations, PeggingSimulations: cfg.PeggingSimulations},
		{ID: 3, Kind: metrics.MonteCarloAgent, DiscardSimulations: config.MaxDiscardSimulations, PeggingSimulations: config.MaxPeggingSimulations},
	}

	// Each matchup pairs the baseline agent against a Monte Carlo agent
	matchUps := [][game.NumPlayers]metrics.AgentConfig{}
	for _, c := range budgetConfigs {
		matchUps = append(matchUps, [game.NumPlayers]metrics.AgentConfig{baseline, c})
	}

	return runExperiment("budget", cfg, append(budgetConfigs, baseline), matchUps)
}

func runExperiment(name string, cfg *config.Config, configs []metrics.AgentConfig, matchUps [][game.NumPlayers]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	rules := cfg.Rules()

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), matchup[0], matchup[1])
		wins := [game.NumPlayers]int{}

		for i := 0; i < cfg.Games; i++ {
			// Alternate the first deal so neither seat keeps the first crib
			dealer := game.Player(i % game.NumPlayers)
			seed := cfg.Seed + uint64(count)
			agents := [game.NumPlayers]agent.Agent{newAgent(matchup[0], rules), newAgent(matchup[1], rules)}

			winner, gameMetric, moveMetrics := engine.LocalEngine(agents, rules, seed, dealer).Run()
			count++
			if winner != game.NoPlayer {
				wins[winner]++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Matchup:    mi + 1,
				Agent1:     matchup[0].ID,
				Agent2:     matchup[1].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d game %d with winner: %s", mi+1, i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d: wins %v", mi+1, len(matchUps), wins)
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, cfg.OutputDir, configs, gameRecords, moveRecords)
}

func store(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(games), len(moves), writer.Dir())
	return writer.Dir(), nil
}

func newAgent(config metrics.AgentConfig, rules game.Rules) agent.Agent {
	switch config.Kind {
	case metrics.GreedyAgent:
		return agent.NewGreedyAgent(rules)
	case metrics.MonteCarloAgent:
		return agent.NewMonteCarloAgent(searcher.NewMonteCarlo(rules,
			searcher.WithDiscardSimulations(config.DiscardSimulations),
			searcher.WithPeggingSimulations(config.PeggingSimulations),
			searcher.WithMetrics(),
		))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
