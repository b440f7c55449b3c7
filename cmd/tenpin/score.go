package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tenpin/internal/core"
	"github.com/vovakirdan/tenpin/internal/render"
	"github.com/vovakirdan/tenpin/internal/scorecard"
	"github.com/vovakirdan/tenpin/internal/scoring"
)

type scoreFlags struct {
	files []string
	plain bool
}

func newScoreCmd(a *app) *cobra.Command {
	var f scoreFlags

	cmd := &cobra.Command{
		Use:   "score [frame...]",
		Short: "Score frames from notation or card files",
		Long: `Score one or more frames. Each argument is a whole frame in notation:
turns separated by spaces, balls by commas, F for a foul.

Every frame is checked against the rules before it is scored.

Examples:
  tenpin score "10 7,3 9,0 10 0,8 8,2 0,6 10 10 10,8,1"
  tenpin score --file card.yaml
  tenpin score --file cards/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, a, f, args)
		},
	}

	cmd.Flags().StringArrayVar(&f.files, "file", nil, "Card file or directory (.yaml, .yml, .txt); repeatable")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Disable colours")
	return cmd
}

func runScore(cmd *cobra.Command, a *app, f scoreFlags, args []string) error {
	if len(args) == 0 && len(f.files) == 0 {
		return fmt.Errorf("nothing to score: pass frames or --file")
	}

	var files []scorecard.File
	if len(args) > 0 {
		series := make(core.Series, len(args))
		for i, text := range args {
			frame, err := core.ParseFrame(text)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			series[i] = frame
		}
		files = append(files, scorecard.File{Path: "arguments", Card: scorecard.FromSeries("Player 1", series)})
	}

	for _, path := range f.files {
		loaded, err := loadCards(path)
		if err != nil {
			return err
		}
		files = append(files, loaded...)
	}

	w := cmd.OutOrStdout()
	r := render.New(!f.plain && isTerminal(w))
	for _, file := range files {
		if err := file.Card.Validate(); err != nil {
			return fmt.Errorf("%s: %w", file.Path, err)
		}
		a.log.Debug("scoring card", "path", file.Path, "players", len(file.Card.Players))
		if err := writeCard(w, r, file); err != nil {
			return err
		}
	}
	return nil
}

// loadCards reads a single card, or every card under a directory.
func loadCards(path string) ([]scorecard.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return scorecard.LoadAll(path)
	}
	card, err := scorecard.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []scorecard.File{{Path: path, Card: card}}, nil
}

func writeCard(w io.Writer, r *render.Renderer, file scorecard.File) error {
	for _, p := range file.Card.Players {
		for i, frame := range p.Series {
			if _, err := fmt.Fprintf(w, "%s: %s, frame %d\n%s\n", file.Path, p.Name, i+1, r.Frame(frame)); err != nil {
				return err
			}
		}
		if len(p.Series) > 1 {
			if _, err := fmt.Fprintf(w, "%s: %s, series pins %d\n\n", file.Path, p.Name, scoring.TotalPins(p.Series)); err != nil {
				return err
			}
		}
	}
	return nil
}
