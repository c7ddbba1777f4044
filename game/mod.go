package game

// Player identifies one of the two seats at the table.
type Player int

const (
	NoPlayer Player = iota - 1
	Player1
	Player2
)

const NumPlayers = 2

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "none"
	}
}
