package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	MonteCarloAgent = "montecarlo"
	GreedyAgent     = "greedy"
)

// AgentConfig describes one competitor in an experiment.
type AgentConfig struct {
	ID                 int
	Kind               string // MonteCarloAgent or GreedyAgent
	DiscardSimulations int
	PeggingSimulations int
}

type GameRecord struct {
	Matchup int
	Agent1  int // AgentConfig.ID seated as Player1
	Agent2  int // AgentConfig.ID seated as Player2
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameMetric.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a directory for one experiment run under
// root/name/<timestamp>.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "discard_simulations", "pegging_simulations"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.DiscardSimulations),
			strconv.Itoa(config.PeggingSimulations),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "matchup", "agent1", "agent2", "seed", "starting_dealer", "winner",
		"score1", "score2", "rounds", "moves", "start_time", "end_time", "duration",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Matchup),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.FormatUint(record.Seed, 10),
			record.StartingDealer.String(),
			record.Winner.String(),
			strconv.Itoa(record.Scores[0]),
			strconv.Itoa(record.Scores[1]),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "round", "player", "action", "candidates", "simulations", "value", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game.String(),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Round),
			record.Player.String(),
			record.Action.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Simulations),
			strconv.FormatFloat(record.Value, 'f', 4, 64),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err = writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	if err = writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
