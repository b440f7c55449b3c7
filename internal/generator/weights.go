package generator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tenpin/internal/core"
	"github.com/vovakirdan/tenpin/internal/rng"
)

// DomainSize is the number of outcomes a single ball can have: 0..10 and a foul.
const DomainSize = core.MaxPins + 2

// Domain lists every ball outcome in draw order. Index 10 is a strike,
// index 11 a foul.
var Domain = func() [DomainSize]core.Roll {
	var d [DomainSize]core.Roll
	for i := 0; i <= core.MaxPins; i++ {
		d[i] = core.Pins(i)
	}
	d[DomainSize-1] = core.FoulBall()
	return d
}()

// DefaultWeights favours strikes, then nines, then 6..8 and fouls.
var DefaultWeights = [DomainSize]int{1, 1, 1, 1, 1, 1, 2, 2, 2, 3, 5, 2}

// ErrInvalidWeights is returned for tables that cannot be sampled.
var ErrInvalidWeights = errors.New("generator: invalid weights")

// Table is a cumulative weight table over Domain.
type Table struct {
	cum   [DomainSize]int
	total int
}

// NewTable builds a cumulative table. weights must have one non-negative entry
// per Domain outcome and a positive sum.
func NewTable(weights []int) (Table, error) {
	var t Table
	if len(weights) != DomainSize {
		return t, fmt.Errorf("%w: need %d entries, got %d", ErrInvalidWeights, DomainSize, len(weights))
	}
	sum := 0
	for i, w := range weights {
		if w < 0 {
			return t, fmt.Errorf("%w: entry %d is negative", ErrInvalidWeights, i)
		}
		sum += w
		t.cum[i] = sum
	}
	if sum == 0 {
		return t, fmt.Errorf("%w: total weight is zero", ErrInvalidWeights)
	}
	t.total = sum
	return t, nil
}

// Total returns the sum of all weights.
func (t Table) Total() int { return t.total }

// Pick draws one uniform float scaled by the total weight and returns the
// first index whose cumulative weight exceeds it.
func (t Table) Pick(src rng.Source) int {
	u := src.Float64() * float64(t.total)
	hi := DomainSize - 1
	return sort.Search(hi, func(i int) bool {
		return float64(t.cum[i]) > u
	})
}
