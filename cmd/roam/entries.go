package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/roam/content"
	"github.com/lixenwraith/roam/core"
	"github.com/lixenwraith/roam/engine"
	"github.com/lixenwraith/roam/registry"
)

// NewEntriesCmd creates the entries subcommand
func NewEntriesCmd() *cobra.Command {
	var (
		worldName string
		kindName  string
		source    string
		filter    string
		schema    bool
	)

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Validate and list an entry collection",
		Long: `Load an entry file or directory the way a world would and list the result.
With --schema, print the JSON Schema for list files instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if schema {
				data, err := content.GenerateSchema()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			if source == "" {
				return oops.Code(engine.CodeEntriesEmpty).Errorf("--entries is required")
			}

			kind, err := entryKind(worldName, kindName)
			if err != nil {
				return err
			}
			loader := content.NewLoader(kind)
			loader.Filter = filter
			reg, err := loader.Load(source)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tTITLE\tDATE\tDESTINATION")
			for i, e := range reg.Pointers() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, e.Title, e.DateLabel, e.Destination)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d %s from %s\n", reg.Len(), kind.Plural(), reg.Source())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&worldName, "world", defaultWorld, "world whose collection kind to use")
	f.StringVar(&kindName, "kind", "", "collection kind (posts, projects, roles), overrides --world")
	f.StringVar(&source, "entries", "", "entry file or directory")
	f.StringVar(&filter, "filter", "", "glob over entry titles and tags")
	f.BoolVar(&schema, "schema", false, "print the list file JSON Schema and exit")

	return cmd
}

func entryKind(worldName, kindName string) (core.EntryKind, error) {
	if kindName != "" {
		kind, ok := core.ParseEntryKind(kindName)
		if !ok {
			return kind, oops.Code(codeConfigInvalid).With("kind", kindName).Errorf("unknown collection kind %q", kindName)
		}
		return kind, nil
	}
	def, err := registry.Lookup(worldName)
	if err != nil {
		return core.KindPost, err
	}
	return def.Kind, nil
}
