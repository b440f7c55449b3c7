package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tenpin/internal/config"
	"github.com/vovakirdan/tenpin/internal/rng"
)

// app carries state shared by all subcommands.
type app struct {
	log *log.Logger
	cfg config.Config
	env config.Env

	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagProfile  string
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	a := &app{log: logger}

	root := &cobra.Command{
		Use:   "tenpin",
		Short: "Generate and score ten-pin bowling frames",
		Long: `tenpin generates random but rule-compliant bowling frames, scores them
with strike and spare bonuses, and compares two players over a series.

Available commands:
  generate - Generate random frames
  score    - Score frames from notation or a card file
  match    - Score a two-player match
  list     - List random sources and weight profiles
  version  - Print the version

Examples:
  tenpin generate --seed 0
  tenpin score "10 7,3 9,0 10 0,8 8,2 0,6 10 10 10,8,1"
  tenpin score --file card.yaml
  tenpin match --random --seed 0 --frames 3`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().Int64Var(&a.flagSeed, "seed", 0, "RNG seed (default: random, or $TENPIN_SEED)")
	root.PersistentFlags().StringVar(&a.flagConfig, "config", "", "Config file (default: ~/.tenpin/config.yaml)")
	root.PersistentFlags().StringVar(&a.flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.flagProfile, "profile", "", "Weight preset: default, novice, pro, uniform")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newScoreCmd(a))
	root.AddCommand(newMatchCmd(a))
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setup resolves environment, log level and config. Flags win over
// TENPIN_* variables, which win over the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	a.env = e

	level := e.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.flagLogLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	a.log.SetLevel(lvl)

	path := e.ConfigPath
	if cmd.Flags().Changed("config") {
		path = a.flagConfig
	}
	cfg, source, err := config.Load(path)
	if err != nil {
		return err
	}
	a.log.Debug("config loaded", "source", source)

	if err := e.Apply(&cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("profile") {
		if err := config.ApplyProfile(&cfg, config.Profile(a.flagProfile)); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// seed returns the --seed flag, then $TENPIN_SEED, then a fresh random seed.
// Zero is a valid seed.
func (a *app) seed(cmd *cobra.Command) (int64, error) {
	if cmd.Flags().Changed("seed") {
		return a.flagSeed, nil
	}
	if a.env.Seed != nil {
		return *a.env.Seed, nil
	}
	s, err := rng.NewSeed()
	if err != nil {
		return 0, err
	}
	a.log.Info("using random seed", "seed", s)
	return s, nil
}

// newLogger creates the CLI logger with coloured level badges.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tenpin",
	})

	styles := log.DefaultStyles()
	badge := func(text, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(text).
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(color))
	}
	styles.Levels[log.DebugLevel] = badge("DEBUG", "63")
	styles.Levels[log.InfoLevel] = badge("INFO", "86")
	styles.Levels[log.WarnLevel] = badge("WARN", "192")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "204")
	logger.SetStyles(styles)
	return logger
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
