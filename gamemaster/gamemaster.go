package gamemaster

import (
	"fmt"

	"cribbage/agent"
	"cribbage/experiments/metrics"
	"cribbage/game"
	"cribbage/random"

	"github.com/rs/zerolog/log"
)

// ShowCount is one counted hand or crib from the show.
type ShowCount struct {
	Owner     game.Player
	Crib      bool
	Cards     []game.Card
	Breakdown game.ScoreBreakdown
}

// Session is a single game between two players. It only changes through the
// explicit transitions below, each applied completely before the next, and
// every transition checks that it is valid for the current phase. Steps a UI
// would run automatically (AI discards and plays, the next deal) are ordinary
// calls the caller makes when it chooses.
type Session struct {
	Rules    game.Rules
	Phase    Phase
	Round    int
	Dealer   game.Player
	Scores   game.Scoreboard
	Hands    [game.NumPlayers][]game.Card // Dealt six, then the kept four
	Discards [game.NumPlayers][]game.Card
	Crib     []game.Card
	Starter  game.Card
	Pegging  game.PeggingState
	Counts   []ShowCount

	deck    game.Deck
	rng     random.Source
	counted bool
}

// NewSession starts a game whose shuffles and AI decisions all replay from seed.
func NewSession(rules game.Rules, seed uint64, firstDealer game.Player) *Session {
	return &Session{
		Rules:  rules,
		Phase:  DealPhase,
		Dealer: firstDealer,
		Scores: game.NewScoreboard(rules),
		rng:    random.New(seed),
	}
}

func (s *Session) NonDealer() game.Player {
	return s.Dealer.Opponent()
}

func (s *Session) GameOver() bool {
	return s.Phase == GameOverPhase
}

func (s *Session) Winner() game.Player {
	return s.Scores.Winner
}

// Seen lists the cards p can know about besides their own hand: their own
// discards, the starter once cut, and every card played this round.
func (s *Session) Seen(p game.Player) []game.Card {
	seen := append([]game.Card(nil), s.Discards[p]...)
	if s.Phase >= PeggingPhase && s.Starter != (game.Card{}) {
		seen = append(seen, s.Starter)
	}
	return append(seen, s.Pegging.Played...)
}

// PeggingView is the pegging state as p may see it when deciding.
func (s *Session) PeggingView(p game.Player) game.PeggingState {
	view := s.Pegging
	view.Seen = append(append([]game.Card(nil), s.Discards[p]...), s.Starter)
	return view
}

func (s *Session) expect(phase Phase, action string) error {
	if s.Phase == GameOverPhase {
		return ErrGameOver
	}
	if s.Phase != phase {
		return fmt.Errorf("%w: cannot %s during %s", ErrWrongPhase, action, s.Phase)
	}
	return nil
}

// award credits points through the scoreboard, ending the game the moment a
// player reaches the maximum.
func (s *Session) award(p game.Player, points int, reason string) []Event {
	applied := s.Scores.Add(p, points)
	if applied == 0 {
		return nil
	}
	log.Debug().
		Str("player", p.String()).
		Int("points", applied).
		Str("reason", reason).
		Ints("scores", s.Scores.Points[:]).
		Msg("scored")
	if s.Scores.GameOver() {
		s.Phase = GameOverPhase
		log.Info().
			Str("winner", p.String()).
			Int("round", s.Round).
			Ints("scores", s.Scores.Points[:]).
			Msg("game over")
	}
	return []Event{{Player: p, Points: applied, Reason: reason}}
}

// Deal shuffles a fresh deck and deals six cards each, the non-dealer first.
func (s *Session) Deal() error {
	if err := s.expect(DealPhase, "deal"); err != nil {
		return err
	}
	deck := game.NewShuffledDeck(s.rng)
	first, second, rest := game.DealRound(deck)

	s.Round++
	s.deck = rest
	s.Hands[s.NonDealer()] = first
	s.Hands[s.Dealer] = second
	s.Discards = [game.NumPlayers][]game.Card{}
	s.Crib = nil
	s.Starter = game.Card{}
	s.Pegging = game.PeggingState{}
	s.Counts = nil
	s.counted = false
	s.Phase = DiscardPhase

	log.Debug().Int("round", s.Round).Str("dealer", s.Dealer.String()).Msg("dealt")
	return nil
}

// Discard commits two of p's six cards to the crib. The crib is complete and
// the game moves on to the cut once both players have discarded.
func (s *Session) Discard(p game.Player, cards []game.Card) error {
	if err := s.expect(DiscardPhase, "discard"); err != nil {
		return err
	}
	if s.Discards[p] != nil {
		return ErrAlreadyDiscarded
	}
	kept, _, err := game.CommitDiscard(s.Hands[p], cards, nil)
	if err != nil {
		return fmt.Errorf("%s discarding %v: %w", p, cards, err)
	}
	s.Hands[p] = kept
	s.Discards[p] = append([]game.Card(nil), cards...)

	if s.Discards[s.Dealer] != nil && s.Discards[s.NonDealer()] != nil {
		s.Crib = append(append([]game.Card(nil), s.Discards[s.Dealer]...), s.Discards[s.NonDealer()]...)
		s.Phase = CutPhase
	}
	return nil
}

// AIDiscard asks a for p's discard and commits it.
func (s *Session) AIDiscard(p game.Player, a agent.Agent) (metrics.SearchMetric, error) {
	if err := s.expect(DiscardPhase, "discard"); err != nil {
		return metrics.SearchMetric{}, err
	}
	if s.Discards[p] != nil {
		return metrics.SearchMetric{}, ErrAlreadyDiscarded
	}
	choice, metric := a.Discard(s.Hands[p], s.Seen(p), p == s.Dealer, s.rng)
	if err := s.Discard(p, choice.Discard); err != nil {
		panic(fmt.Sprintf("agent chose an illegal discard: %v", err))
	}
	return metric, nil
}

// Cut turns the starter and credits heels to the dealer for a jack. Pegging
// starts with the non-dealer.
func (s *Session) Cut() ([]Event, error) {
	if err := s.expect(CutPhase, "cut"); err != nil {
		return nil, err
	}
	starter, rest, ok := game.CutStarter(s.deck)
	if !ok {
		return nil, ErrEmptyDeck
	}
	s.Starter = starter
	s.deck = rest
	s.Pegging = game.NewPeggingState(s.Hands, s.NonDealer(), nil)
	s.Phase = PeggingPhase
	log.Debug().Stringer("starter", starter).Msg("cut")

	if starter.Rank == game.Jack {
		return s.award(s.Dealer, game.HeelsPoints, ReasonHeels), nil
	}
	return nil, nil
}

// Play puts card from p's hand on the pegging stack.
func (s *Session) Play(p game.Player, card game.Card) ([]Event, error) {
	if err := s.expect(PeggingPhase, "play"); err != nil {
		return nil, err
	}
	next, points, err := s.Pegging.Play(p, card)
	if err != nil {
		return nil, err
	}
	s.Pegging = next
	events := s.award(p, points, ReasonPlay)
	s.finishPegging()
	return events, nil
}

// Go declares that p cannot play.
func (s *Session) Go(p game.Player) ([]Event, error) {
	if err := s.expect(PeggingPhase, "go"); err != nil {
		return nil, err
	}
	next, award, err := s.Pegging.Go(p)
	if err != nil {
		return nil, err
	}
	s.Pegging = next
	var events []Event
	if award.Points > 0 {
		events = s.award(award.Player, award.Points, ReasonGo)
	}
	s.finishPegging()
	return events, nil
}

// AIPeg asks a for p's pegging move and applies it, declaring Go when a
// reports no play.
func (s *Session) AIPeg(p game.Player, a agent.Agent) ([]Event, metrics.SearchMetric, error) {
	if err := s.expect(PeggingPhase, "play"); err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	if s.Pegging.Turn != p {
		return nil, metrics.SearchMetric{}, game.ErrNotYourTurn
	}
	move, metric := a.Peg(s.PeggingView(p), s.rng)
	var events []Event
	var err error
	if move.OK {
		events, err = s.Play(p, move.Card)
	} else {
		events, err = s.Go(p)
	}
	if err != nil {
		panic(fmt.Sprintf("agent chose an illegal pegging move: %v", err))
	}
	return events, metric, nil
}

func (s *Session) finishPegging() {
	if s.Phase == PeggingPhase && s.Pegging.Done() {
		s.Phase = ShowPhase
	}
}

// Show counts the non-dealer's hand, the dealer's hand, then the crib,
// stopping as soon as someone reaches the maximum.
func (s *Session) Show() ([]Event, error) {
	if err := s.expect(ShowPhase, "count the show"); err != nil {
		return nil, err
	}
	if s.counted {
		return nil, fmt.Errorf("%w: round %d is already counted", ErrWrongPhase, s.Round)
	}
	s.counted = true

	counts := []ShowCount{
		{Owner: s.NonDealer(), Cards: s.Hands[s.NonDealer()]},
		{Owner: s.Dealer, Cards: s.Hands[s.Dealer]},
		{Owner: s.Dealer, Cards: s.Crib, Crib: true},
	}
	var events []Event
	for _, c := range counts {
		c.Breakdown = game.Count(c.Cards, s.Starter, c.Crib, s.Rules)
		s.Counts = append(s.Counts, c)
		reason := ReasonHand
		if c.Crib {
			reason = ReasonCrib
		}
		events = append(events, s.award(c.Owner, c.Breakdown.Total(), reason)...)
		if s.GameOver() {
			break
		}
	}
	return events, nil
}

// NextRound passes the deal to the other player once the show is counted.
func (s *Session) NextRound() error {
	if err := s.expect(ShowPhase, "start the next round"); err != nil {
		return err
	}
	if !s.counted {
		return fmt.Errorf("%w: round %d has not been counted", ErrWrongPhase, s.Round)
	}
	s.Dealer = s.Dealer.Opponent()
	s.Phase = DealPhase
	return nil
}
