package game

const (
	DefaultMaxScore = 120
	HeelsPoints     = 2
	LastCardPoints  = 1
)

// Rules carries the configurable parts of a game. Standard two-player
// cribbage plus the optional 7-8-9 house bonus.
type Rules interface {
	HouseBonus() bool
	MaxScore() int
}

type StandardRules struct {
	SevenEightNine bool // 3 points for each distinct 7-8-9 combination in a count
	TargetScore    int
}

// NewStandardRules enables the house bonus, which is the default table rule.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		SevenEightNine: true,
		TargetScore:    DefaultMaxScore,
	}
}

func (sr *StandardRules) HouseBonus() bool {
	return sr.SevenEightNine
}

func (sr *StandardRules) MaxScore() int {
	if sr.TargetScore <= 0 {
		return DefaultMaxScore
	}
	return sr.TargetScore
}
