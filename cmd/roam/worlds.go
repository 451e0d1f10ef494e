package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/roam/registry"
	_ "github.com/lixenwraith/roam/world" // registers the built-in worlds
)

// NewWorldsCmd creates the worlds subcommand
func NewWorldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worlds",
		Short: "List the built-in worlds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tENTRIES\tTOUR\tDESCRIPTION")
			for _, def := range registry.Definitions() {
				tour := "no"
				if def.Profile != nil && def.Profile().Tour.Available {
					tour = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", def.Name, def.Kind.Plural(), tour, def.Description)
			}
			return w.Flush()
		},
	}
}
