package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest WORD",
		Short: "Show translation suggestions for a word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions := a.suggestions.Suggest(strings.Join(args, " "))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TRANSLATION\tCONFIDENCE\tMEANING\tCONTEXT")
			for _, s := range suggestions {
				fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", s.Translation, s.Confidence, s.Meaning, s.Context)
			}
			return w.Flush()
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the layer collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := a.stats.Summary()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Layers: %d\nWords:  %d\n", stats.Layers, stats.Words)
			if stats.LargestSize > 0 {
				fmt.Fprintf(out, "Largest: %s (%d)\n", stats.LargestLayer, stats.LargestSize)
			}
			return nil
		},
	}
}
