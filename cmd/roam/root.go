package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands
var configFile string

// NewRootCmd creates the root command for the roam CLI
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roam",
		Short: "roam - walk-and-reveal worlds in the terminal",
		Long: `roam places entries (posts, projects, roles) as doors, statues or
holotable projections in a small world you walk with the keyboard.
Walk up to an object to reveal it, confirm to travel to its destination.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewWorldsCmd())
	cmd.AddCommand(NewEntriesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}
