package game

// ActionType represents the kind of decision a player makes.
type ActionType int

const (
	DiscardAction ActionType = iota
	PlayAction
	GoAction
)

func (a ActionType) String() string {
	switch a {
	case DiscardAction:
		return "discard"
	case PlayAction:
		return "play"
	case GoAction:
		return "go"
	default:
		return "unknown"
	}
}
