package game

// Scoreboard accumulates points for both players. Totals never decrease and
// never pass the rules' maximum; the first player to reach it ends the game
// and nothing is added afterwards.
type Scoreboard struct {
	Points [NumPlayers]int
	Max    int
	Winner Player
}

func NewScoreboard(rules Rules) Scoreboard {
	return Scoreboard{Max: rules.MaxScore(), Winner: NoPlayer}
}

func (sb Scoreboard) GameOver() bool {
	return sb.Winner != NoPlayer
}

// Add credits points to p and returns the points actually applied.
func (sb *Scoreboard) Add(p Player, points int) int {
	if sb.GameOver() || points <= 0 {
		return 0
	}
	applied := min(points, sb.Max-sb.Points[p])
	sb.Points[p] += applied
	if sb.Points[p] >= sb.Max {
		sb.Winner = p
	}
	return applied
}
