package gamemaster

import (
	"errors"

	"cribbage/game"
)

type Phase int

const (
	DealPhase Phase = iota
	DiscardPhase
	CutPhase
	PeggingPhase
	ShowPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case DealPhase:
		return "deal"
	case DiscardPhase:
		return "discard"
	case CutPhase:
		return "cut"
	case PeggingPhase:
		return "pegging"
	case ShowPhase:
		return "show"
	case GameOverPhase:
		return "game over"
	default:
		return "unknown"
	}
}

var (
	ErrWrongPhase       = errors.New("action not allowed in the current phase")
	ErrGameOver         = errors.New("game is over")
	ErrAlreadyDiscarded = errors.New("player has already discarded")
	ErrEmptyDeck        = errors.New("deck is empty")
)

// Event reports points credited to a player by a transition.
type Event struct {
	Player game.Player
	Points int
	Reason string
}

const (
	ReasonHeels = "heels"
	ReasonPlay  = "play"
	ReasonGo    = "go"
	ReasonHand  = "hand"
	ReasonCrib  = "crib"
)
