package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoll is matched by every RollError.
	ErrInvalidRoll = errors.New("invalid roll")
	// ErrInvalidTurnShape is matched by every TurnShapeError.
	ErrInvalidTurnShape = errors.New("invalid turn shape")
)

// RollError describes a roll outside the 0..10/F/- domain.
type RollError struct {
	Pins int    // offending pin count, when numeric
	Text string // offending text, when unparseable
}

func (e *RollError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("invalid roll %q", e.Text)
	}
	return fmt.Sprintf("invalid roll %d: pins must be 0..%d", e.Pins, MaxPins)
}

// Is lets errors.Is match ErrInvalidRoll.
func (e *RollError) Is(target error) bool { return target == ErrInvalidRoll }

// TurnShapeError describes a turn that breaks the turn invariants.
type TurnShapeError struct {
	Turn   int // 1-based position in the frame, 0 when unknown
	Reason string
}

func (e *TurnShapeError) Error() string {
	if e.Turn == 0 {
		return "invalid turn shape: " + e.Reason
	}
	return fmt.Sprintf("invalid turn shape at turn %d: %s", e.Turn, e.Reason)
}

// Is lets errors.Is match ErrInvalidTurnShape.
func (e *TurnShapeError) Is(target error) bool { return target == ErrInvalidTurnShape }
