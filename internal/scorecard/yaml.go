package scorecard

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tenpin/internal/core"
)

// YAMLCard is the on-disk YAML structure:
//
//	seed: 0
//	players:
//	  - name: alice
//	    frames:
//	      - [[10, null], [7, 3], [9, 0], ..., [10, 8, 1]]
type YAMLCard struct {
	Seed    *int64       `yaml:"seed,omitempty"`
	Players []YAMLPlayer `yaml:"players"`
}

// YAMLPlayer is one player entry.
type YAMLPlayer struct {
	Name   string      `yaml:"name"`
	Frames []YAMLFrame `yaml:"frames"`
}

// YAMLFrame encodes a frame as a flow sequence of turns. Each turn is a
// sequence of rolls: integers, "F" for a foul and null for an unthrown ball.
type YAMLFrame struct {
	core.Frame
}

// ParseYAML parses a YAML score card.
func ParseYAML(data []byte) (Card, error) {
	var yc YAMLCard
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Card{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	card := Card{Seed: yc.Seed}
	for i, yp := range yc.Players {
		name := yp.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		series := make(core.Series, len(yp.Frames))
		for j, yf := range yp.Frames {
			series[j] = yf.Frame
		}
		card.Players = append(card.Players, Player{Name: name, Series: series})
	}
	return card, nil
}

// MarshalYAML renders a card with each frame as a flow sequence.
func MarshalYAML(card Card) ([]byte, error) {
	yc := YAMLCard{Seed: card.Seed}
	for _, p := range card.Players {
		yp := YAMLPlayer{Name: p.Name, Frames: make([]YAMLFrame, len(p.Series))}
		for i, f := range p.Series {
			yp.Frames[i] = YAMLFrame{Frame: f}
		}
		yc.Players = append(yc.Players, yp)
	}

	data, err := yaml.Marshal(&yc)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// MarshalYAML implements yaml.Marshaler.
func (f YAMLFrame) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, t := range f.Frame {
		tn := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		rolls := []core.Roll{t.First, t.Second}
		if t.HasFill() {
			rolls = append(rolls, t.Fill)
		}
		for _, r := range rolls {
			tn.Content = append(tn.Content, rollNode(r))
		}
		node.Content = append(node.Content, tn)
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *YAMLFrame) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: frame must be a sequence of turns", node.Line)
	}
	if len(node.Content) != core.TurnsPerFrame {
		return fmt.Errorf("line %d: frame needs %d turns, got %d", node.Line, core.TurnsPerFrame, len(node.Content))
	}

	var frame core.Frame
	for i, tn := range node.Content {
		t, err := decodeTurn(tn)
		if err != nil {
			return fmt.Errorf("line %d: turn %d: %w", tn.Line, i+1, err)
		}
		frame[i] = t
	}
	f.Frame = frame
	return nil
}

func decodeTurn(node *yaml.Node) (core.Turn, error) {
	if node.Kind != yaml.SequenceNode {
		return core.Turn{}, fmt.Errorf("turn must be a sequence of rolls")
	}
	if n := len(node.Content); n == 0 || n > 3 {
		return core.Turn{}, &core.TurnShapeError{Reason: fmt.Sprintf("turn has %d balls", n)}
	}

	var rolls [3]core.Roll
	for i, rn := range node.Content {
		r, err := decodeRoll(rn)
		if err != nil {
			return core.Turn{}, err
		}
		rolls[i] = r
	}
	return core.Turn{First: rolls[0], Second: rolls[1], Fill: rolls[2]}, nil
}

func decodeRoll(node *yaml.Node) (core.Roll, error) {
	if node.Kind != yaml.ScalarNode {
		return core.Roll{}, fmt.Errorf("roll must be a scalar")
	}
	switch node.ShortTag() {
	case "!!null":
		return core.NoBall(), nil
	case "!!int":
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return core.Roll{}, &core.RollError{Text: node.Value}
		}
		r := core.Pins(n)
		if err := r.Validate(); err != nil {
			return core.Roll{}, err
		}
		return r, nil
	default:
		return core.ParseRoll(node.Value)
	}
}

func rollNode(r core.Roll) *yaml.Node {
	switch r.Kind() {
	case core.Thrown:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(r.Value())}
	case core.Foul:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "F"}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
