package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newLayerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layer",
		Short: "Create, list and delete layers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME",
			Short: "Create an empty layer",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				layer := a.store.AddLayer(strings.Join(args, " "))
				fmt.Fprintf(cmd.OutOrStdout(), "Created layer %s (%s)\n", layer.Name, layer.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List layers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				layers := a.store.Layers()
				if len(layers) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No layers yet")
					return nil
				}

				now := time.Now()
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tWORDS\tCREATED")
				for _, l := range layers {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", l.ID, l.Name, len(l.Words), l.CreatedString(now))
				}
				return w.Flush()
			},
		},
		&cobra.Command{
			Use:   "rm LAYER_ID",
			Short: "Delete a layer and all of its words",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if !a.store.DeleteLayer(args[0]) {
					return fmt.Errorf("layer %q not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted layer %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
