package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newWordCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: "Manage words inside a layer",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add LAYER_ID ORIGINAL [TRANSLATION]",
			Short: "Add a word; without TRANSLATION the best suggestion is used",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				layerID, original := args[0], args[1]

				var translation string
				if len(args) == 3 {
					translation = args[2]
				} else {
					translation = a.suggestions.Suggest(original)[0].Translation
				}

				word, ok := a.store.AddWord(layerID, original, translation)
				if !ok {
					return fmt.Errorf("layer %q not found", layerID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s — %s (%s)\n", word.Original, word.Translation, word.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "ls LAYER_ID",
			Short: "List words of a layer in order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				layer, ok := a.store.GetLayerByID(args[0])
				if !ok {
					return fmt.Errorf("layer %q not found", args[0])
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tORIGINAL\tTRANSLATION")
				for _, word := range layer.Words {
					fmt.Fprintf(w, "%s\t%s\t%s\n", word.ID, word.Original, word.Translation)
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "rm LAYER_ID WORD_ID",
			Short: "Delete a word",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !a.store.DeleteWord(args[0], args[1]) {
					return fmt.Errorf("word %q not found in layer %q", args[1], args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted word %s\n", args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit LAYER_ID WORD_ID ORIGINAL TRANSLATION",
			Short: "Replace a word's original and translation",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !a.store.UpdateWord(args[0], args[1], args[2], args[3]) {
					return fmt.Errorf("word %q not found in layer %q", args[1], args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s — %s\n", args[2], args[3])
				return nil
			},
		},
	)
	return cmd
}
