package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tenpin/internal/config"
	"github.com/vovakirdan/tenpin/internal/registry"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List random sources and weight profiles",
		Long:  `Shows the random sources accepted by --rng and the presets accepted by --profile.`,
		Args:  cobra.NoArgs,
		// No config needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func runList(w io.Writer) error {
	sources := registry.List()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		maxIDLen = max(maxIDLen, len(s.ID))
	}
	for _, p := range config.Profiles() {
		maxIDLen = max(maxIDLen, len(p))
	}

	var b strings.Builder
	b.WriteString("Random sources:\n\n")
	fmt.Fprintf(&b, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(&b, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range sources {
		marker := ""
		if s.ID == registry.DefaultSource {
			marker = " (default)"
		}
		fmt.Fprintf(&b, "  %-*s  %s%s\n", maxIDLen, s.ID, s.Title, marker)
	}

	b.WriteString("\nWeight profiles (0..10 pins, then foul):\n\n")
	for _, p := range config.Profiles() {
		weights, err := config.WeightsForProfile(p)
		if err != nil {
			return err
		}
		parts := make([]string, len(weights))
		for i, v := range weights {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(&b, "  %-*s  %s\n", maxIDLen, p, strings.Join(parts, " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
