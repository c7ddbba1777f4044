package game

// ScoreBreakdown holds each scoring component of a counted hand or crib.
type ScoreBreakdown struct {
	Fifteens int
	Pairs    int
	Runs     int
	Flush    int
	Knobs    int
	House    int
}

func (b ScoreBreakdown) Total() int {
	return b.Fifteens + b.Pairs + b.Runs + b.Flush + b.Knobs + b.House
}

// ScoreHand counts a four card hand (or crib) with its starter.
func ScoreHand(hand []Card, starter Card, isCrib bool, rules Rules) int {
	return Count(hand, starter, isCrib, rules).Total()
}

// Count scores every component independently over the five cards. The result
// depends only on the multiset of cards, never on their order.
func Count(hand []Card, starter Card, isCrib bool, rules Rules) ScoreBreakdown {
	all := make([]Card, 0, len(hand)+1)
	all = append(all, hand...)
	all = append(all, starter)

	var ranks [King + 1]int
	for _, c := range all {
		ranks[c.Rank]++
	}

	b := ScoreBreakdown{
		Fifteens: scoreFifteens(all),
		Pairs:    scorePairs(ranks),
		Runs:     scoreRuns(ranks),
		Flush:    scoreFlush(hand, starter, isCrib),
		Knobs:    scoreKnobs(hand, starter),
	}
	if rules.HouseBonus() {
		b.House = 3 * ranks[7] * ranks[8] * ranks[9]
	}
	return b
}

// scoreFifteens awards 2 for every non-empty subset summing to 15.
func scoreFifteens(cards []Card) int {
	points := 0
	for mask := 1; mask < 1<<len(cards); mask++ {
		sum := 0
		for i, c := range cards {
			if mask&(1<<i) != 0 {
				sum += c.Value()
			}
		}
		if sum == 15 {
			points += 2
		}
	}
	return points
}

// scorePairs awards 2 per pair of equal ranks: 2, 6 and 12 for 2, 3 and 4 of a kind.
func scorePairs(ranks [King + 1]int) int {
	points := 0
	for _, n := range ranks {
		points += n * (n - 1)
	}
	return points
}

// scoreRuns scores the longest runs of consecutive distinct ranks. Each run is
// worth its length times the multiplicity of every rank in it.
func scoreRuns(ranks [King + 1]int) int {
	type run struct{ length, combos int }
	var runs []run
	longest := 0

	for r := Ace; r <= King; {
		if ranks[r] == 0 {
			r++
			continue
		}
		start := r
		combos := 1
		for r <= King && ranks[r] > 0 {
			combos *= ranks[r]
			r++
		}
		length := int(r - start)
		if length >= 3 {
			runs = append(runs, run{length: length, combos: combos})
			longest = max(longest, length)
		}
	}

	points := 0
	for _, rn := range runs {
		if rn.length == longest {
			points += rn.length * rn.combos
		}
	}
	return points
}

// scoreFlush needs all hand cards of one suit. The crib only scores a flush
// when the starter matches too.
func scoreFlush(hand []Card, starter Card, isCrib bool) int {
	if len(hand) == 0 {
		return 0
	}
	suit := hand[0].Suit
	for _, c := range hand[1:] {
		if c.Suit != suit {
			return 0
		}
	}
	if starter.Suit == suit {
		return len(hand) + 1
	}
	if isCrib {
		return 0
	}
	return len(hand)
}

func scoreKnobs(hand []Card, starter Card) int {
	for _, c := range hand {
		if c.Rank == Jack && c.Suit == starter.Suit {
			return 1
		}
	}
	return 0
}
