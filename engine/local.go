package engine

import (
	"time"

	"cribbage/agent"
	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/gamemaster"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Local plays two agents against each other in-process, driving a
// gamemaster.Session through every phase.
type Local struct {
	Session *gamemaster.Session
	Agents  [game.NumPlayers]agent.Agent

	id          uuid.UUID
	seed        uint64
	firstDealer game.Player
	moves       []metrics.MoveMetric
}

func LocalEngine(agents [game.NumPlayers]agent.Agent, rules game.Rules, seed uint64, firstDealer game.Player) *Local {
	for i, a := range agents {
		if a == nil {
			panic("missing agent for " + game.Player(i).String())
		}
	}
	return &Local{
		Session:     gamemaster.NewSession(rules, seed, firstDealer),
		Agents:      agents,
		id:          uuid.New(),
		seed:        seed,
		firstDealer: firstDealer,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *Local) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	s := e.Session
	start := time.Now()
	log.Info().Msgf("game %s: %s deals first", e.id, e.firstDealer)

	for !s.GameOver() && s.Round < MaxRounds {
		e.playRound()
		if !s.GameOver() {
			must(s.NextRound())
		}
	}
	if !s.GameOver() {
		log.Warn().Msgf("game %s stopped after %d rounds without a winner", e.id, s.Round)
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		ID:             e.id,
		Seed:           e.seed,
		StartingDealer: e.firstDealer,
		Winner:         s.Winner(),
		Scores:         s.Scores.Points,
		Rounds:         s.Round,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     len(e.moves),
	}
	return s.Winner(), gameMetric, e.moves
}

func (e *Local) playRound() {
	s := e.Session
	must(s.Deal())

	for _, p := range []game.Player{s.NonDealer(), s.Dealer} {
		metric, err := s.AIDiscard(p, e.Agents[p])
		must(err)
		e.record(p, metric)
	}

	_, err := s.Cut()
	must(err)

	for s.Phase == gamemaster.PeggingPhase {
		p := s.Pegging.Turn
		_, metric, err := s.AIPeg(p, e.Agents[p])
		must(err)
		e.record(p, metric)
	}
	if s.GameOver() {
		return
	}

	_, err = s.Show()
	must(err)
	for _, c := range s.Counts {
		log.Debug().
			Str("owner", c.Owner.String()).
			Bool("crib", c.Crib).
			Int("points", c.Breakdown.Total()).
			Msg("show")
	}
}

func (e *Local) record(p game.Player, metric metrics.SearchMetric) {
	e.moves = append(e.moves, metrics.MoveMetric{
		Step:         len(e.moves) + 1,
		Round:        e.Session.Round,
		Player:       p,
		SearchMetric: metric,
	})
}

// must panics on a transition the engine itself sequenced wrongly.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
