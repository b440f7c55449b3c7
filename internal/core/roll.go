// Package core defines the value types shared by the generator, the scorer and
// the match layer: rolls, turns, frames, series and matches.
// Everything here is plain immutable data with no external dependencies.
package core

import "strconv"

// MaxPins is the number of pins in a full rack.
const MaxPins = 10

// RollKind tags the variant held by a Roll.
type RollKind uint8

const (
	// NotThrown marks a ball that was never delivered (the second slot after a
	// strike in a non-terminal turn, or an absent fill ball).
	NotThrown RollKind = iota
	// Thrown is a legal delivery that knocked down Roll.Pins() pins.
	Thrown
	// Foul is an illegal delivery. It scores 0 but still counts as a ball.
	Foul
)

// Roll is one ball's outcome: Thrown(n), Foul or NotThrown.
// The zero value is NotThrown.
type Roll struct {
	kind RollKind
	pins int
}

// Pins returns a thrown roll that knocked down n pins.
// n is not range-checked here; Validate reports values outside 0..10.
func Pins(n int) Roll {
	return Roll{kind: Thrown, pins: n}
}

// FoulBall returns a foul roll.
func FoulBall() Roll {
	return Roll{kind: Foul}
}

// NoBall returns a roll that was not thrown.
func NoBall() Roll {
	return Roll{}
}

// Kind returns the variant tag.
func (r Roll) Kind() RollKind { return r.kind }

// IsThrown reports whether a ball was delivered. Fouls count as delivered.
func (r Roll) IsThrown() bool { return r.kind != NotThrown }

// IsFoul reports whether the roll is a foul.
func (r Roll) IsFoul() bool { return r.kind == Foul }

// IsStrike reports whether the roll is a clean ten.
func (r Roll) IsStrike() bool { return r.kind == Thrown && r.pins == MaxPins }

// Value returns the pins credited for scoring. Fouls and unthrown balls are 0.
func (r Roll) Value() int {
	if r.kind != Thrown {
		return 0
	}
	return r.pins
}

// Validate reports an error if a thrown roll is outside 0..10.
func (r Roll) Validate() error {
	if r.kind == Thrown && (r.pins < 0 || r.pins > MaxPins) {
		return &RollError{Pins: r.pins}
	}
	return nil
}

// String renders the roll in frame notation: digits, "F" or "-".
func (r Roll) String() string {
	switch r.kind {
	case Thrown:
		return strconv.Itoa(r.pins)
	case Foul:
		return "F"
	default:
		return "-"
	}
}

// ParseRoll is the inverse of Roll.String.
func ParseRoll(s string) (Roll, error) {
	switch s {
	case "F", "f":
		return FoulBall(), nil
	case "-", "":
		return NoBall(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Roll{}, &RollError{Text: s}
	}
	r := Pins(n)
	if err := r.Validate(); err != nil {
		return Roll{}, err
	}
	return r, nil
}
