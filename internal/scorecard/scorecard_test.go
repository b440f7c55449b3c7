package scorecard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tenpin/internal/core"
)

const matchYAML = `
seed: 0
players:
  - name: alice
    frames:
      - [[10, null], [7, 3], [9, 0], [10], [0, 8], [8, 2], [0, 6], [10, ~], [10, null], [10, 8, 1]]
      - [[10, null], [10, null], [7, F], [8, 1], [6, "F"], [3, 7], [9, f], [F, 9], [10, null], [6, F]]
  - frames:
      - [[8, 1], [8, 0], [1, 0], [6, 1], [6, 3], [0, 0], [0, 6], [4, 1], [4, 1], [5, 2]]
      - [[10], [10], [10], [10], [10], [10], [10], [10], [10], [10, 10, 10]]
`

func mustFrame(t *testing.T, text string) core.Frame {
	t.Helper()
	f, err := core.ParseFrame(text)
	if err != nil {
		t.Fatalf("ParseFrame(%q) failed: %v", text, err)
	}
	return f
}

func TestParseYAML(t *testing.T) {
	card, err := ParseYAML([]byte(matchYAML))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if card.Seed == nil || *card.Seed != 0 {
		t.Errorf("Seed = %v, want 0", card.Seed)
	}
	if len(card.Players) != 2 {
		t.Fatalf("len(Players) = %d, want 2", len(card.Players))
	}
	if card.Players[0].Name != "alice" {
		t.Errorf("Players[0].Name = %q, want alice", card.Players[0].Name)
	}
	if card.Players[1].Name != "Player 2" {
		t.Errorf("Players[1].Name = %q, want Player 2", card.Players[1].Name)
	}

	want := []string{
		"10 7,3 9,0 10 0,8 8,2 0,6 10 10 10,8,1",
		"10 10 7,F 8,1 6,F 3,7 9,F F,9 10 6,F",
	}
	for i, text := range want {
		if got := card.Players[0].Series[i]; got != mustFrame(t, text) {
			t.Errorf("frame %d = %v, want %s", i+1, got, text)
		}
	}
	if err := card.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	m, err := card.Match()
	if err != nil {
		t.Fatalf("Match() failed: %v", err)
	}
	if m[1][1] != mustFrame(t, "10 10 10 10 10 10 10 10 10 10,10,10") {
		t.Errorf("player 2 frame 2 = %v", m[1][1])
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "short frame", yaml: "players:\n  - frames:\n      - [[10], [10]]\n"},
		{name: "pins out of range", yaml: "players:\n  - frames:\n      - [[11, 0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0]]\n"},
		{name: "bad symbol", yaml: "players:\n  - frames:\n      - [[X, 0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0]]\n"},
		{name: "four balls", yaml: "players:\n  - frames:\n      - [[1,2,3,4], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0]]\n"},
		{name: "turn is scalar", yaml: "players:\n  - frames:\n      - [7, [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0]]\n"},
		{name: "not yaml", yaml: "players: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.yaml)); err == nil {
				t.Error("ParseYAML() should fail")
			}
		})
	}
}

func TestParseYAMLKeepsShapeErrorsForValidate(t *testing.T) {
	// A turn with too many pins parses; Validate reports it.
	doc := "players:\n  - frames:\n      - [[7, 7], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0], [0,0]]\n"
	card, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if err := card.Validate(); !errors.Is(err, core.ErrInvalidTurnShape) {
		t.Errorf("Validate() = %v, want ErrInvalidTurnShape", err)
	}
}

func TestMarshalYAML(t *testing.T) {
	card := FromSeries("bob", core.Series{mustFrame(t, "10 10 7,F 8,1 6,F 3,7 9,F F,9 10 6,F")}).WithSeed(42)

	data, err := MarshalYAML(card)
	if err != nil {
		t.Fatalf("MarshalYAML() failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{"seed: 42", "name: bob", "[[10, null], [10, null], [7, F], [8, 1]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if back.Players[0].Series[0] != card.Players[0].Series[0] {
		t.Errorf("reparsed frame = %v, want %v", back.Players[0].Series[0], card.Players[0].Series[0])
	}
}

func TestParseText(t *testing.T) {
	text := `# seed 0
10 7,3 9,0 10 0,8 8,2 0,6 10 10 10,8,1
10 10 7,F 8,1 6,F 3,7 9,F F,9 10 6,F

8,1 8,0 1,0 6,1 6,3 0,0 0,6 4,1 4,1 5,2
10 10 10 10 10 10 10 10 10 10,10,10
`
	card, err := ParseText([]byte(text))
	if err != nil {
		t.Fatalf("ParseText() failed: %v", err)
	}
	if len(card.Players) != 2 {
		t.Fatalf("len(Players) = %d, want 2", len(card.Players))
	}
	if got := len(card.Players[1].Series); got != 2 {
		t.Errorf("len(Players[1].Series) = %d, want 2", got)
	}
	if card.Players[1].Name != "Player 2" {
		t.Errorf("Players[1].Name = %q", card.Players[1].Name)
	}
	if card.Seed == nil || *card.Seed != 0 {
		t.Errorf("Seed = %v, want 0", card.Seed)
	}

	if _, err := ParseText([]byte("10 10 10\n")); err == nil {
		t.Error("ParseText() should reject a short frame")
	}
	if _, err := ParseText([]byte("# seed many\n" + strikes + "\n")); err == nil {
		t.Error("ParseText() should reject a malformed seed")
	}
}

const strikes = "10 10 10 10 10 10 10 10 10 10,10,10"

func seedOf(v int64) *int64 { return &v }

func TestParseTextSeedComment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int64
	}{
		{"no comment", strikes + "\n", nil},
		{"plain comment", "# league night\n" + strikes + "\n", nil},
		{"seed", "# league night\n#seed -12\n" + strikes + "\n", seedOf(-12)},
		{"seed after frames", strikes + "\n# seed 5\n", nil},
		{"first seed wins", "# seed 1\n# seed 2\n" + strikes + "\n", seedOf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := ParseText([]byte(tt.text))
			if err != nil {
				t.Fatalf("ParseText() failed: %v", err)
			}
			switch {
			case tt.want == nil && card.Seed != nil:
				t.Errorf("Seed = %d, want nil", *card.Seed)
			case tt.want != nil && (card.Seed == nil || *card.Seed != *tt.want):
				t.Errorf("Seed = %v, want %d", card.Seed, *tt.want)
			}
		})
	}
}

func TestMarshalText(t *testing.T) {
	g := "0,0 0,0 0,0 0,0 0,0 0,0 0,0 0,0 0,0 0,0"
	p := "10 10 10 10 10 10 10 10 10 10,10,10"
	card := FromMatch(core.Match{{mustFrame(t, g)}, {mustFrame(t, p)}}).WithSeed(7)

	want := "# seed 7\n" + g + "\n\n" + p + "\n"
	if got := string(MarshalText(card)); got != want {
		t.Errorf("MarshalText() = %q, want %q", got, want)
	}
}

func TestMatchNeedsTwoPlayers(t *testing.T) {
	card := FromSeries("solo", nil)
	if _, err := card.Match(); !errors.Is(err, ErrNotAMatch) {
		t.Errorf("Match() error = %v, want ErrNotAMatch", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	card := FromMatch(core.Match{
		{mustFrame(t, "10 7,3 9,0 10 0,8 8,2 0,6 10 10 10,8,1")},
		{mustFrame(t, "8,1 8,0 1,0 6,1 6,3 0,0 0,6 4,1 4,1 5,2")},
	}).WithSeed(42)

	for _, name := range []string{"b.yaml", "a.txt"} {
		if err := SaveFile(filepath.Join(dir, name), card); err != nil {
			t.Fatalf("SaveFile(%s) failed: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2", len(files))
	}
	if filepath.Base(files[0].Path) != "a.txt" {
		t.Errorf("files[0] = %s, want a.txt first", files[0].Path)
	}
	for _, f := range files {
		m, err := f.Card.Match()
		if err != nil {
			t.Fatalf("%s: Match() failed: %v", f.Path, err)
		}
		if m[0][0] != card.Players[0].Series[0] || m[1][0] != card.Players[1].Series[0] {
			t.Errorf("%s: frames differ after reload", f.Path)
		}
		if f.Card.Seed == nil || *f.Card.Seed != 42 {
			t.Errorf("%s: Seed = %v after reload, want 42", f.Path, f.Card.Seed)
		}
	}

	if err := SaveFile(filepath.Join(dir, "card.json"), card); err == nil {
		t.Error("SaveFile() should reject .json")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFile() should fail on a missing file")
	}
}
