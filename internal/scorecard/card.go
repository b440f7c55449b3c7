// Package scorecard reads and writes bowling score cards: one or more
// players, each with a series of frames.
//
// Two file formats are supported. YAML cards carry player names and an
// optional seed; text cards hold one frame per line in core notation, with
// a blank line between players.
package scorecard

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tenpin/internal/core"
)

// ErrNotAMatch is returned when a card does not hold exactly two players.
var ErrNotAMatch = errors.New("scorecard: a match needs exactly two players")

// Player is one named series.
type Player struct {
	Name   string
	Series core.Series
}

// Card is a parsed score card.
type Card struct {
	Seed    *int64 // seed the card was generated from, if recorded
	Players []Player
}

// FromSeries builds a single-player card.
func FromSeries(name string, s core.Series) Card {
	return Card{Players: []Player{{Name: name, Series: s}}}
}

// FromMatch builds a two-player card.
func FromMatch(m core.Match) Card {
	return Card{Players: []Player{
		{Name: "Player 1", Series: m[0]},
		{Name: "Player 2", Series: m[1]},
	}}
}

// WithSeed records the generating seed.
func (c Card) WithSeed(seed int64) Card {
	c.Seed = &seed
	return c
}

// Match returns the two players' series.
func (c Card) Match() (core.Match, error) {
	if len(c.Players) != 2 {
		return core.Match{}, fmt.Errorf("%w: got %d", ErrNotAMatch, len(c.Players))
	}
	return core.Match{c.Players[0].Series, c.Players[1].Series}, nil
}

// Validate checks the shape of every frame on the card.
func (c Card) Validate() error {
	for _, p := range c.Players {
		if err := p.Series.Validate(); err != nil {
			return fmt.Errorf("scorecard: player %q: %w", p.Name, err)
		}
	}
	return nil
}
