package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalPlay      = errors.New("illegal play")
	ErrCardNotInHand    = fmt.Errorf("%w: card not in hand", ErrIllegalPlay)
	ErrWouldExceed31    = fmt.Errorf("%w: total would exceed 31", ErrIllegalPlay)
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidGo        = errors.New("go declared with a legal play available")
	ErrPeggingOver      = errors.New("pegging is over")
	ErrMalformedDiscard = errors.New("discard must be two distinct cards from a six card hand")
)
