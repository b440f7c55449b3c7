package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tenpin/internal/match"
	"github.com/vovakirdan/tenpin/internal/registry"
	"github.com/vovakirdan/tenpin/internal/render"
	"github.com/vovakirdan/tenpin/internal/scorecard"
)

type matchFlags struct {
	file   string
	random bool
	frames int
	out    string
	rng    string
	plain  bool
}

func newMatchCmd(a *app) *cobra.Command {
	var f matchFlags

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score a two-player match",
		Long: `Compare two players frame by frame. The higher frame score earns the frame
points, a tied frame splits them, and the player with more raw pins over the
series earns the pins bonus. Point values come from the config.

Examples:
  tenpin match --file match.yaml
  tenpin match --random --seed 0
  tenpin match --random --frames 5 --out match.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatch(cmd, a, f)
		},
	}

	cmd.Flags().StringVar(&f.file, "file", "", "Card file with exactly two players")
	cmd.Flags().BoolVar(&f.random, "random", false, "Generate a random match")
	cmd.Flags().IntVarP(&f.frames, "frames", "n", 0, "Frames per player for --random (default: from config)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Also save the random match to a .yaml or .txt file")
	cmd.Flags().StringVar(&f.rng, "rng", registry.DefaultSource, "Random source for --random (see 'tenpin list')")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Disable colours")
	cmd.MarkFlagsOneRequired("file", "random")
	cmd.MarkFlagsMutuallyExclusive("file", "random")
	return cmd
}

func runMatch(cmd *cobra.Command, a *app, f matchFlags) error {
	var card scorecard.Card
	var err error
	if f.random {
		card, err = a.generateCard(cmd, f.rng, f.frames, 2)
		if err != nil {
			return err
		}
		if f.out != "" {
			if err := scorecard.SaveFile(f.out, card); err != nil {
				return err
			}
			a.log.Info("match written", "path", f.out)
		}
	} else {
		card, err = scorecard.LoadFile(f.file)
		if err != nil {
			return err
		}
	}

	if err := card.Validate(); err != nil {
		return err
	}
	m, err := card.Match()
	if err != nil {
		return err
	}
	res, err := match.Score(m, a.cfg.Rules())
	if err != nil {
		return err
	}
	a.log.Debug("match scored", "points", fmt.Sprintf("%d-%d", res.TotalPoints(0), res.TotalPoints(1)))

	w := cmd.OutOrStdout()
	names := [2]string{card.Players[0].Name, card.Players[1].Name}
	_, err = fmt.Fprint(w, render.New(!f.plain && isTerminal(w)).Match(names, res))
	return err
}
