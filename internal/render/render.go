// Package render draws frames and match results as terminal tables.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/tenpin/internal/core"
	"github.com/vovakirdan/tenpin/internal/match"
	"github.com/vovakirdan/tenpin/internal/scoring"
)

// Mark classifies a turn for display.
type Mark uint8

const (
	MarkOpen Mark = iota
	MarkSpare
	MarkStrike
	MarkFoul
)

// markStyles maps a Mark to its lipgloss style.
var markStyles = map[Mark]lipgloss.Style{
	MarkOpen:   lipgloss.NewStyle(),
	MarkSpare:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	MarkStrike: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	MarkFoul:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// MarkOf classifies a turn. A strike or spare wins over a foul in the same
// turn.
func MarkOf(t core.Turn) Mark {
	switch {
	case t.First.IsStrike():
		return MarkStrike
	case t.Second.IsThrown() && t.PairTotal() == core.MaxPins:
		return MarkSpare
	case t.First.IsFoul() || t.Second.IsFoul() || t.Fill.IsFoul():
		return MarkFoul
	default:
		return MarkOpen
	}
}

// Renderer draws tables, with colour when styled is set.
type Renderer struct {
	styled bool
}

// New creates a renderer.
func New(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// Frame draws one frame: the balls of each turn, the turn scores and the
// running total, followed by the frame score and raw pins.
func (r *Renderer) Frame(f core.Frame) string {
	headers := []string{""}
	balls := []string{"balls"}
	turns := []string{"turn"}
	running := []string{"total"}

	scores := scoring.TurnScores(f)
	totals := scoring.Running(f)
	for i, t := range f {
		headers = append(headers, strconv.Itoa(i+1))
		balls = append(balls, r.style(markStyles[MarkOf(t)], t.String()))
		turns = append(turns, strconv.Itoa(scores[i]))
		running = append(running, strconv.Itoa(totals[i]))
	}

	tbl := r.newTable().Headers(headers...).Row(balls...).Row(turns...).Row(running...)

	var b strings.Builder
	b.WriteString(tbl.String())
	fmt.Fprintf(&b, "\nScore: %d  Pins: %d\n", totals[core.TurnsPerFrame-1], scoring.FramePins(f))
	return b.String()
}

// Match draws the per-frame comparison, the points awarded and the outcome.
func (r *Renderer) Match(names [2]string, res match.Result) string {
	tbl := r.newTable().Headers("frame", names[0], names[1], "points", "")

	for i := range res.Scores[0] {
		a, b := res.Scores[0][i], res.Scores[1][i]
		tbl.Row(
			strconv.Itoa(i+1),
			r.winner(a, b),
			r.winner(b, a),
			strconv.Itoa(res.Points[0][i]),
			strconv.Itoa(res.Points[1][i]),
		)
	}

	bonus := [2]string{"0", "0"}
	if n := len(res.Scores[0]); len(res.Points[0]) > n {
		bonus = [2]string{strconv.Itoa(res.Points[0][n]), strconv.Itoa(res.Points[1][n])}
	}
	a, b := res.TotalPins[0], res.TotalPins[1]
	tbl.Row("pins", r.winner(a, b), r.winner(b, a), bonus[0], bonus[1])
	tbl.Row("", "", "", strconv.Itoa(res.TotalPoints(0)), strconv.Itoa(res.TotalPoints(1)))

	var sb strings.Builder
	sb.WriteString(tbl.String())
	sb.WriteByte('\n')
	sb.WriteString(r.style(winStyle, res.Outcome()))
	sb.WriteByte('\n')
	return sb.String()
}

// winner formats v, highlighted when it beats other.
func (r *Renderer) winner(v, other int) string {
	text := strconv.Itoa(v)
	if v > other {
		return r.style(winStyle, text)
	}
	return text
}
