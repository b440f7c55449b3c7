package core

import (
	"errors"
	"fmt"
	"strings"
)

// TurnsPerFrame is the fixed length of a frame.
const TurnsPerFrame = 10

// Frame is a full game of ten turns. Only the last one may carry a fill ball.
type Frame [TurnsPerFrame]Turn

// Series is one player's sequence of frames.
type Series []Frame

// Match pairs two players' series.
type Match [2]Series

// Validate checks every turn of the frame. The first failing turn is reported
// with its 1-based position.
func (f Frame) Validate() error {
	for i, t := range f {
		if err := t.Validate(i == TurnsPerFrame-1); err != nil {
			var shape *TurnShapeError
			if errors.As(err, &shape) {
				shape.Turn = i + 1
				return shape
			}
			return fmt.Errorf("turn %d: %w", i+1, err)
		}
	}
	return nil
}

// String renders the frame in the whitespace-separated notation accepted by
// ParseFrame.
func (f Frame) String() string {
	parts := make([]string, len(f))
	for i, t := range f {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Validate checks every frame in the series.
func (s Series) Validate() error {
	for i, f := range s {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
	}
	return nil
}

// ParseTurn parses "7,3", "10", "F,9" or "10,8,1".
// A lone "10" is a non-terminal strike.
func ParseTurn(s string) (Turn, error) {
	fields := strings.Split(s, ",")
	if len(fields) > 3 {
		return Turn{}, &TurnShapeError{Reason: fmt.Sprintf("too many balls in %q", s)}
	}

	var rolls [3]Roll
	for i, field := range fields {
		r, err := ParseRoll(strings.TrimSpace(field))
		if err != nil {
			return Turn{}, err
		}
		rolls[i] = r
	}

	t := Turn{First: rolls[0], Second: rolls[1], Fill: rolls[2]}
	if len(fields) == 1 && !t.First.IsStrike() {
		return Turn{}, &TurnShapeError{Reason: fmt.Sprintf("single ball %q is not a strike", s)}
	}
	return t, nil
}

// ParseFrame parses ten whitespace-separated turns, e.g.
//
//	10 7,3 9,0 10 0,8 8,2 0,6 10 10 10,8,1
func ParseFrame(s string) (Frame, error) {
	var f Frame
	fields := strings.Fields(s)
	if len(fields) != TurnsPerFrame {
		return f, fmt.Errorf("frame needs %d turns, got %d", TurnsPerFrame, len(fields))
	}
	for i, field := range fields {
		t, err := ParseTurn(field)
		if err != nil {
			return f, fmt.Errorf("turn %d: %w", i+1, err)
		}
		f[i] = t
	}
	return f, nil
}
