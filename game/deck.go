package game

import (
	"cribbage/random"
	"cribbage/utils"
)

const (
	DeckSize = 52
	DealSize = 6
	HandSize = 4
	CribSize = 4
)

// Deck is an ordered sequence of cards. Drawing from a deck returns a new deck
// rather than changing the one drawn from.
type Deck []Card

// NewDeck returns the 52 distinct cards in suit-major order.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// NewShuffledDeck is a fresh deck permuted by rng.
func NewShuffledDeck(rng random.Source) Deck {
	return Shuffle(NewDeck(), rng)
}

// Shuffle returns a Fisher-Yates permutation of deck driven by rng.
func Shuffle(deck Deck, rng random.Source) Deck {
	shuffled := make(Deck, len(deck))
	copy(shuffled, deck)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := random.Intn(rng, i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw takes n cards from the front of the deck.
func (d Deck) Draw(n int) ([]Card, Deck, bool) {
	if n > len(d) {
		return nil, d, false
	}
	drawn := make([]Card, n)
	copy(drawn, d[:n])
	rest := make(Deck, len(d)-n)
	copy(rest, d[n:])
	return drawn, rest, true
}

// Without returns the cards of d that are not in excluded, keeping order.
func (d Deck) Without(excluded ...[]Card) Deck {
	skip := make(map[Card]bool)
	for _, cards := range excluded {
		for _, c := range cards {
			skip[c] = true
		}
	}
	rest := make(Deck, 0, len(d))
	for _, c := range d {
		if !skip[c] {
			rest = append(rest, c)
		}
	}
	return rest
}

// Unseen lists the cards of a full deck that are in none of the given sets.
func Unseen(seen ...[]Card) []Card {
	return NewDeck().Without(seen...)
}

// DealRound deals six cards to each player, alternating, starting with the
// first player. It panics if the deck is short, which a fresh deck never is.
func DealRound(deck Deck) (first, second []Card, rest Deck) {
	drawn, rest, ok := deck.Draw(2 * DealSize)
	if !ok {
		panic("deck too small to deal a round")
	}
	first = make([]Card, 0, DealSize)
	second = make([]Card, 0, DealSize)
	for i, c := range drawn {
		if i%2 == 0 {
			first = append(first, c)
		} else {
			second = append(second, c)
		}
	}
	return first, second, rest
}

// CutStarter takes the starter from the front of the remaining deck. Heels is
// the caller's concern.
func CutStarter(deck Deck) (Card, Deck, bool) {
	drawn, rest, ok := deck.Draw(1)
	if !ok {
		return Card{}, deck, false
	}
	return drawn[0], rest, true
}

// CommitDiscard moves exactly two cards from a six card hand to the crib.
// On error hand and crib are returned unchanged.
func CommitDiscard(hand []Card, discard []Card, crib []Card) (kept []Card, newCrib []Card, err error) {
	if len(hand) != DealSize || len(discard) != 2 || discard[0] == discard[1] {
		return hand, crib, ErrMalformedDiscard
	}
	kept = append([]Card(nil), hand...)
	for _, c := range discard {
		var ok bool
		if kept, ok = utils.Remove(kept, c); !ok {
			return hand, crib, ErrMalformedDiscard
		}
	}
	newCrib = append(append([]Card(nil), crib...), discard...)
	return kept, newCrib, nil
}
