package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/portfolio-forecast/internal/calculation"
	"github.com/spf13/cobra"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List built-in portfolio profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMEAN %\tSTD DEV %")
			for _, p := range calculation.PresetProfiles() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Mean, p.StandardDeviation)
			}
			return w.Flush()
		},
	}
}
