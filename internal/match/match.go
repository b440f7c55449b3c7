// Package match compares two players' series.
//
// Every frame awards points to the higher scorer (or splits them on a tie),
// and the player with more raw pins over the whole series earns a bonus.
// Raw pins exclude strike and spare bonuses but include fill balls.
package match

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tenpin/internal/core"
	"github.com/vovakirdan/tenpin/internal/scoring"
)

// ErrSeriesLengthMismatch is returned when the players bowled a different
// number of frames.
var ErrSeriesLengthMismatch = errors.New("match: series lengths differ")

// PlayerID identifies a player in a match.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// Rules sets the points awarded.
type Rules struct {
	FrameWin  int // points for winning a frame
	FrameDraw int // points each for a tied frame
	PinsBonus int // points for the higher raw pin total
}

// DefaultRules returns two points per frame, one each on a tie, and one
// point for total pins.
func DefaultRules() Rules {
	return Rules{FrameWin: 2, FrameDraw: 1, PinsBonus: 1}
}

// Result holds the full breakdown of a match.
type Result struct {
	Scores    [2][]int // frame scores per player
	Points    [2][]int // points per frame, then the pins bonus if awarded
	TotalPins [2]int
	Winner    PlayerID // NoPlayer on a draw
}

// TotalPoints sums a player's points. p is 0 or 1.
func (r Result) TotalPoints(p int) int {
	sum := 0
	for _, v := range r.Points[p] {
		sum += v
	}
	return sum
}

// Outcome renders the result line.
func (r Result) Outcome() string {
	switch r.Winner {
	case Player1:
		return "Player 1 won!"
	case Player2:
		return "Player 2 won!"
	default:
		return "The match is a draw!"
	}
}

// Score computes the match result with the given rules.
func Score(m core.Match, rules Rules) (Result, error) {
	if len(m[0]) != len(m[1]) {
		return Result{}, fmt.Errorf("%w: %d vs %d frames", ErrSeriesLengthMismatch, len(m[0]), len(m[1]))
	}

	var res Result
	for p := range m {
		res.Scores[p] = make([]int, len(m[p]))
		for i, f := range m[p] {
			res.Scores[p][i] = scoring.ScoreFrame(f)
		}
		res.TotalPins[p] = scoring.TotalPins(m[p])
	}

	for i := range res.Scores[0] {
		a, b := res.Scores[0][i], res.Scores[1][i]
		switch {
		case a > b:
			res.award(rules.FrameWin, 0)
		case a < b:
			res.award(0, rules.FrameWin)
		default:
			res.award(rules.FrameDraw, rules.FrameDraw)
		}
	}

	// No bonus on tied pins.
	switch a, b := res.TotalPins[0], res.TotalPins[1]; {
	case a > b:
		res.award(rules.PinsBonus, 0)
	case a < b:
		res.award(0, rules.PinsBonus)
	}

	switch a, b := res.TotalPoints(0), res.TotalPoints(1); {
	case a > b:
		res.Winner = Player1
	case a < b:
		res.Winner = Player2
	default:
		res.Winner = NoPlayer
	}
	return res, nil
}

func (r *Result) award(p1, p2 int) {
	r.Points[0] = append(r.Points[0], p1)
	r.Points[1] = append(r.Points[1], p2)
}
