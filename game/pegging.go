package game

import (
	"cribbage/utils"
)

const (
	MaxPeggingTotal = 31
	fifteen         = 15
	maxRunLength    = 7
)

// Award is a score produced by a pegging transition.
type Award struct {
	Player Player
	Points int
}

// PeggingState is the card-play phase of a round. Transitions never modify the
// receiver: each returns a new state, and a rejected transition returns the
// receiver unchanged together with the error.
type PeggingState struct {
	Stack      []Card             // Cards played since the last reset
	Total      int                // Sum of the stack's values, never above 31
	Hands      [NumPlayers][]Card // Cards each player has yet to play
	Turn       Player
	Passed     [NumPlayers]bool // Players who declared Go on the current stack
	LastPlayer Player           // Player who put the last card on the current stack
	Played     []Card           // Every card played this round, across resets
	Seen       []Card           // Cards known outside the hands, e.g. own discards and the starter
}

// NewPeggingState starts pegging with first to lead. The non-dealer leads.
func NewPeggingState(hands [NumPlayers][]Card, first Player, seen []Card) PeggingState {
	s := PeggingState{
		Turn:       first,
		LastPlayer: NoPlayer,
		Seen:       append([]Card(nil), seen...),
	}
	for p := range hands {
		s.Hands[p] = append([]Card(nil), hands[p]...)
	}
	return s
}

func (s PeggingState) clone() PeggingState {
	c := s
	c.Stack = append([]Card(nil), s.Stack...)
	c.Played = append([]Card(nil), s.Played...)
	c.Seen = append([]Card(nil), s.Seen...)
	for p := range s.Hands {
		c.Hands[p] = append([]Card(nil), s.Hands[p]...)
	}
	return c
}

// Done reports whether both hands have been played out.
func (s PeggingState) Done() bool {
	return len(s.Hands[Player1]) == 0 && len(s.Hands[Player2]) == 0
}

// LegalPlays returns the cards of hand that keep the total at or below 31.
func LegalPlays(hand []Card, total int) []Card {
	var legal []Card
	for _, c := range hand {
		if total+c.Value() <= MaxPeggingTotal {
			legal = append(legal, c)
		}
	}
	return legal
}

// CanPlay reports whether p holds a card that fits under 31.
func (s PeggingState) CanPlay(p Player) bool {
	return len(LegalPlays(s.Hands[p], s.Total)) > 0
}

// Play puts card from actor's hand on the stack and returns the points the
// actor pegs, including the last-card point when this play ends the round.
func (s PeggingState) Play(actor Player, card Card) (PeggingState, int, error) {
	if s.Done() {
		return s, 0, ErrPeggingOver
	}
	if actor != s.Turn {
		return s, 0, ErrNotYourTurn
	}
	rest, ok := utils.Remove(s.Hands[actor], card)
	if !ok {
		return s, 0, ErrCardNotInHand
	}
	if s.Total+card.Value() > MaxPeggingTotal {
		return s, 0, ErrWouldExceed31
	}

	next := s.clone()
	next.Hands[actor] = rest
	next.Stack = append(next.Stack, card)
	next.Total += card.Value()
	next.Played = append(next.Played, card)
	next.LastPlayer = actor

	points := PeggingPoints(next.Stack, next.Total)
	switch {
	case next.Total == MaxPeggingTotal:
		// 31 pegs its own 2 points and never the last-card point
		next.reset()
		next.Turn = next.leader(actor.Opponent())
	case next.Done():
		points += LastCardPoints
	default:
		next.Turn = next.following(actor)
	}
	return next, points, nil
}

// Go records that actor cannot play. When the other player cannot play either,
// the last player to have played a card pegs a point and the stack resets.
func (s PeggingState) Go(actor Player) (PeggingState, Award, error) {
	if s.Done() {
		return s, Award{}, ErrPeggingOver
	}
	if actor != s.Turn {
		return s, Award{}, ErrNotYourTurn
	}
	if s.CanPlay(actor) {
		return s, Award{}, ErrInvalidGo
	}

	next := s.clone()
	next.Passed[actor] = true
	opp := actor.Opponent()
	if !next.Passed[opp] && len(next.Hands[opp]) > 0 {
		next.Turn = opp
		return next, Award{Player: NoPlayer}, nil
	}

	award := Award{Player: next.LastPlayer}
	if next.LastPlayer != NoPlayer {
		award.Points = LastCardPoints
	}
	next.reset()
	// Whoever did not just score leads the new stack
	if award.Player == NoPlayer {
		next.Turn = next.leader(opp)
	} else {
		next.Turn = next.leader(award.Player.Opponent())
	}
	return next, award, nil
}

// following picks who moves after actor played on an open stack: the opponent,
// unless they have already passed or have nothing left to play.
func (s PeggingState) following(actor Player) Player {
	opp := actor.Opponent()
	if len(s.Hands[opp]) > 0 && !s.Passed[opp] {
		return opp
	}
	return actor
}

// leader picks who starts a fresh stack, preferring p when they hold cards.
func (s PeggingState) leader(p Player) Player {
	if len(s.Hands[p]) > 0 {
		return p
	}
	return p.Opponent()
}

func (s *PeggingState) reset() {
	s.Stack = nil
	s.Total = 0
	s.Passed = [NumPlayers]bool{}
	s.LastPlayer = NoPlayer
}

// PeggingPoints scores the card just added to the end of stack, where total
// already includes it.
func PeggingPoints(stack []Card, total int) int {
	if len(stack) == 0 {
		return 0
	}
	points := 0
	if total == fifteen || total == MaxPeggingTotal {
		points += 2
	}

	// Pairs: 2, 6 or 12 for a tail of 2, 3 or 4 equal ranks
	last := stack[len(stack)-1]
	same := 1
	for i := len(stack) - 2; i >= 0 && stack[i].Rank == last.Rank; i-- {
		same++
	}
	points += same * (same - 1)

	// Runs: only the longest qualifying tail counts
	for n := min(len(stack), maxRunLength); n >= 3; n-- {
		if isRun(stack[len(stack)-n:]) {
			points += n
			break
		}
	}
	return points
}

// isRun reports whether cards hold distinct consecutive ranks in any order.
func isRun(cards []Card) bool {
	var present [King + 1]bool
	lo, hi := King, Ace
	for _, c := range cards {
		if present[c.Rank] {
			return false
		}
		present[c.Rank] = true
		lo = min(lo, c.Rank)
		hi = max(hi, c.Rank)
	}
	return int(hi-lo) == len(cards)-1
}
