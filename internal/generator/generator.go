// Package generator synthesizes random, rule-compliant bowling data.
//
// Each Generator owns its random source, so concurrent callers should each
// build their own. With an rng.MT19937 source the output for a given seed is
// fixed forever; tests pin the first turns of seed 0.
package generator

import (
	"github.com/vovakirdan/tenpin/internal/core"
	"github.com/vovakirdan/tenpin/internal/rng"
)

// DefaultFramesPerSeries is the reference series length.
const DefaultFramesPerSeries = 3

// Generator produces turns, frames and series from a random source.
type Generator struct {
	src   rng.Source
	table Table
}

// New creates a generator with DefaultWeights.
func New(src rng.Source) *Generator {
	table, err := NewTable(DefaultWeights[:])
	if err != nil {
		panic(err) // DefaultWeights is a valid table
	}
	return &Generator{src: src, table: table}
}

// NewWithWeights creates a generator with a custom first-ball distribution.
func NewWithWeights(src rng.Source, weights []int) (*Generator, error) {
	table, err := NewTable(weights)
	if err != nil {
		return nil, err
	}
	return &Generator{src: src, table: table}, nil
}

// Turn generates one turn. terminal selects tenth-turn rules: a second ball
// after a strike, and a fill ball when the first two total ten or more.
func (g *Generator) Turn(terminal bool) core.Turn {
	first := Domain[g.table.Pick(g.src)]

	var second core.Roll
	switch {
	case first.IsStrike():
		if terminal {
			second = g.uniform()
		}
	case first.IsFoul():
		// A foul leaves the rack standing, so the second ball may take any value.
		second = g.uniform()
	default:
		remaining := core.MaxPins - first.Value()
		// The partial count is drawn even when it is not picked.
		partial := core.Pins(g.src.IntN(remaining))
		candidates := [3]core.Roll{core.Pins(remaining), partial, core.FoulBall()}
		second = candidates[g.src.IntN(len(candidates))]
	}

	t := core.Open(first, second)
	if terminal && t.PairTotal() >= core.MaxPins {
		t.Fill = g.uniform()
	}
	return t
}

// Frame generates nine regular turns followed by one terminal turn.
func (g *Generator) Frame() core.Frame {
	var f core.Frame
	for i := range core.TurnsPerFrame {
		f[i] = g.Turn(i == core.TurnsPerFrame-1)
	}
	return f
}

// Series generates n frames. A negative n yields an empty series.
func (g *Generator) Series(n int) core.Series {
	s := make(core.Series, max(n, 0))
	for i := range s {
		s[i] = g.Frame()
	}
	return s
}

// Match generates two series of n frames, the first player's series first.
func (g *Generator) Match(n int) core.Match {
	return core.Match{g.Series(n), g.Series(n)}
}

func (g *Generator) uniform() core.Roll {
	return Domain[g.src.IntN(DomainSize)]
}
