package random

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Source yields uniformly distributed values in [0, 1). Every shuffle and every
// simulation draw in a game reads from one Source, so a seed replays the game.
type Source interface {
	Float64() float64
}

// New returns a PCG-backed stream seeded once per game.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Intn returns a value in [0, n) drawn from src.
func Intn(src Source, n int) int {
	if n <= 0 {
		panic("random: n must be positive")
	}
	i := int(src.Float64() * float64(n))
	if i >= n { // Guard against rounding at the top of the range
		i = n - 1
	}
	return i
}

// Sample draws n distinct elements from pool without replacement. The pool is
// not modified. Asking for more elements than the pool holds means the caller
// lost track of which cards are seen, so it panics.
func Sample[T any](src Source, pool []T, n int) []T {
	if n > len(pool) {
		panic(fmt.Sprintf("random: cannot sample %d from a pool of %d", n, len(pool)))
	}
	scratch := make([]T, len(pool))
	copy(scratch, pool)
	// Partial Fisher-Yates: the first n slots end up holding the sample
	for i := 0; i < n; i++ {
		j := i + Intn(src, len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:n]
}
