package scorecard

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tenpin/internal/core"
)

// ParseText parses a text card. Each non-blank line is one frame in core
// notation; a blank line starts the next player. Lines beginning with '#'
// are comments, except a "# seed N" line before the first frame, which sets
// the card seed.
func ParseText(data []byte) (Card, error) {
	var card Card
	var current core.Series

	flush := func() {
		if len(current) == 0 {
			return
		}
		name := fmt.Sprintf("Player %d", len(card.Players)+1)
		card.Players = append(card.Players, Player{Name: name, Series: current})
		current = nil
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			flush()
			continue
		case strings.HasPrefix(text, "#"):
			if card.Players == nil && current == nil && card.Seed == nil {
				seed, ok, err := parseSeedComment(text)
				if err != nil {
					return Card{}, fmt.Errorf("line %d: %w", line, err)
				}
				if ok {
					card.Seed = &seed
				}
			}
			continue
		}

		f, err := core.ParseFrame(text)
		if err != nil {
			return Card{}, fmt.Errorf("line %d: %w", line, err)
		}
		current = append(current, f)
	}
	if err := sc.Err(); err != nil {
		return Card{}, fmt.Errorf("read text card: %w", err)
	}
	flush()
	return card, nil
}

// parseSeedComment reads "# seed N". ok is false for any other comment.
func parseSeedComment(text string) (seed int64, ok bool, err error) {
	fields := strings.Fields(strings.TrimPrefix(text, "#"))
	if len(fields) != 2 || fields[0] != "seed" {
		return 0, false, nil
	}
	seed, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("seed %q: %w", fields[1], err)
	}
	return seed, true, nil
}

// MarshalText renders a card as notation lines.
func MarshalText(card Card) []byte {
	var b strings.Builder
	if card.Seed != nil {
		fmt.Fprintf(&b, "# seed %d\n", *card.Seed)
	}
	for i, p := range card.Players {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, f := range p.Series {
			b.WriteString(f.String())
			b.WriteByte('\n')
		}
	}
	return []byte(b.String())
}
