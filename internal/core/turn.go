package core

import "strings"

// Turn is one player's visit to the lane: two balls, plus a fill ball on the
// terminal turn when the first two clear the rack.
type Turn struct {
	First  Roll
	Second Roll
	Fill   Roll
}

// Open builds a two-ball turn.
func Open(first, second Roll) Turn {
	return Turn{First: first, Second: second}
}

// Strike builds a non-terminal strike turn.
func Strike() Turn {
	return Turn{First: Pins(MaxPins)}
}

// Terminal builds a three-ball terminal turn.
func Terminal(first, second, fill Roll) Turn {
	return Turn{First: first, Second: second, Fill: fill}
}

// HasFill reports whether the turn carries a fill ball.
func (t Turn) HasFill() bool { return t.Fill.IsThrown() }

// IsStrike reports a non-terminal strike: ten on the first ball and no second.
func (t Turn) IsStrike() bool {
	return t.First.IsStrike() && !t.Second.IsThrown() && !t.HasFill()
}

// IsSpare reports a two-ball turn clearing the rack. Fouls count as 0 pins.
func (t Turn) IsSpare() bool {
	if t.HasFill() || !t.First.IsThrown() || !t.Second.IsThrown() {
		return false
	}
	return t.First.Value()+t.Second.Value() == MaxPins
}

// PairTotal is the pins from the first two balls.
func (t Turn) PairTotal() int {
	return t.First.Value() + t.Second.Value()
}

// Pins is the sum of every ball in the turn, fill included, without bonuses.
func (t Turn) Pins() int {
	return t.First.Value() + t.Second.Value() + t.Fill.Value()
}

// Rolls returns the delivered balls in order. Fouls are included.
func (t Turn) Rolls() []Roll {
	out := make([]Roll, 0, 3)
	for _, r := range [3]Roll{t.First, t.Second, t.Fill} {
		if r.IsThrown() {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks the turn invariants. terminal selects the tenth-turn rules.
func (t Turn) Validate(terminal bool) error {
	for _, r := range [3]Roll{t.First, t.Second, t.Fill} {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	if !t.First.IsThrown() {
		return &TurnShapeError{Reason: "first ball not thrown"}
	}
	if !t.First.IsStrike() && t.PairTotal() > MaxPins {
		return &TurnShapeError{Reason: "first two balls exceed the rack"}
	}

	if !terminal {
		if t.HasFill() {
			return &TurnShapeError{Reason: "fill ball outside the terminal turn"}
		}
		if t.First.IsStrike() && t.Second.IsThrown() {
			return &TurnShapeError{Reason: "second ball after a strike"}
		}
		if !t.First.IsStrike() && !t.Second.IsThrown() {
			return &TurnShapeError{Reason: "second ball missing"}
		}
		return nil
	}

	if !t.Second.IsThrown() {
		return &TurnShapeError{Reason: "second ball missing"}
	}
	earned := t.PairTotal() >= MaxPins
	if earned && !t.HasFill() {
		return &TurnShapeError{Reason: "fill ball missing"}
	}
	if !earned && t.HasFill() {
		return &TurnShapeError{Reason: "fill ball not earned"}
	}
	return nil
}

// String renders the turn as comma-separated rolls. A non-terminal strike is "10".
func (t Turn) String() string {
	if t.IsStrike() {
		return t.First.String()
	}
	parts := []string{t.First.String(), t.Second.String()}
	if t.HasFill() {
		parts = append(parts, t.Fill.String())
	}
	return strings.Join(parts, ",")
}
