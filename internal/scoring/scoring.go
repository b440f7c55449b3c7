// Package scoring implements ten-pin scoring over complete frames.
//
// Each turn is scored with a lookahead of at most two turns:
//
//	strike: 10 + next two balls (the next turn's second ball, fouls included,
//	        or the first ball of the turn after)
//	spare:  10 + next ball
//	other:  the turn's own pins, fill ball included
//
// Lookahead past the last turn sees unthrown balls worth 0. The terminal
// turn is never a lookahead source for its own fill ball; it simply adds it.
// Scoring trusts the frame shape; call core.Frame.Validate first for
// untrusted input.
package scoring

import "github.com/vovakirdan/tenpin/internal/core"

// ScoreFrame returns the total for a frame, bonuses included.
func ScoreFrame(f core.Frame) int {
	total := 0
	for i := range f {
		total += scoreTurn(f, i)
	}
	return total
}

// TurnScores returns each turn's contribution to the frame total.
func TurnScores(f core.Frame) [core.TurnsPerFrame]int {
	var out [core.TurnsPerFrame]int
	for i := range f {
		out[i] = scoreTurn(f, i)
	}
	return out
}

// Running returns the cumulative total after each turn, as written on a
// score sheet.
func Running(f core.Frame) [core.TurnsPerFrame]int {
	var out [core.TurnsPerFrame]int
	sum := 0
	for i := range f {
		sum += scoreTurn(f, i)
		out[i] = sum
	}
	return out
}

// TotalPins sums every ball in the series without strike or spare bonuses.
// Fill balls count; fouls and unthrown balls are 0.
func TotalPins(s core.Series) int {
	total := 0
	for _, f := range s {
		total += FramePins(f)
	}
	return total
}

// FramePins sums every ball in one frame without bonuses.
func FramePins(f core.Frame) int {
	total := 0
	for _, t := range f {
		total += t.Pins()
	}
	return total
}

func scoreTurn(f core.Frame, i int) int {
	cur := f[i]
	next := turnAt(f, i+1)

	switch {
	case cur.IsStrike():
		bonus := next.First.Value()
		if next.Second.IsThrown() {
			bonus += next.Second.Value()
		} else {
			bonus += turnAt(f, i+2).First.Value()
		}
		return core.MaxPins + bonus
	case cur.IsSpare():
		return core.MaxPins + next.First.Value()
	default:
		return cur.Pins()
	}
}

// turnAt returns the turn at index i, or an all-unthrown turn past the end.
func turnAt(f core.Frame, i int) core.Turn {
	if i < 0 || i >= len(f) {
		return core.Turn{}
	}
	return f[i]
}
