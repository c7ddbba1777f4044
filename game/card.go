package game

import (
	"fmt"
	"strconv"
	"strings"
)

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitSymbols = [...]string{"C", "D", "H", "S"}

func (s Suit) String() string {
	if s < Clubs || s > Spades {
		return "?"
	}
	return suitSymbols[s]
}

type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Card is an immutable value; two cards are equal when rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value is the counting value used for fifteens and the pegging total:
// face cards count 10 and an ace counts 1.
func (c Card) Value() int {
	return min(int(c.Rank), 10)
}

func (c Card) String() string {
	var r string
	switch c.Rank {
	case Ace:
		r = "A"
	case Jack:
		r = "J"
	case Queen:
		r = "Q"
	case King:
		r = "K"
	default:
		r = strconv.Itoa(int(c.Rank))
	}
	return r + c.Suit.String()
}

// ParseCard reads the String form of a card, e.g. "AS", "10H" or "qd".
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var suit Suit
	switch s[len(s)-1:] {
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "H":
		suit = Hearts
	case "S":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	var rank Rank
	switch r := s[:len(s)-1]; r {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		v, err := strconv.Atoi(r)
		if err != nil || v < 2 || v > 10 {
			return Card{}, fmt.Errorf("invalid rank in card %q", s)
		}
		rank = Rank(v)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCards parses a space separated list of cards and panics on bad input.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// sumValues adds the counting values of cards.
func sumValues(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}
