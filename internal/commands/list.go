package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/hatch/internal/scaffold"
)

// ListCmd creates the 'list' command, which prints every feature,
// provider and template hatch knows about.
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available features, providers and templates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printCatalog(cmd.OutOrStdout())
		},
	}
}

func printCatalog(w io.Writer) {
	fmt.Fprintln(w, "Features:")
	for _, f := range scaffold.AllFeatures {
		fmt.Fprintf(w, "  %-10s %s\n", f, f.Description())
	}

	fmt.Fprintln(w, "\nProviders:")
	for _, p := range scaffold.AllProviders {
		fmt.Fprintf(w, "  %-10s %s (%s)\n", p, p.Label(), scaffold.ModelFor(p))
	}

	fmt.Fprintln(w, "\nTemplates:")
	for _, name := range scaffold.PresetNames() {
		features, _ := scaffold.Preset(name)
		tags := make([]string, len(features))
		for i, f := range features {
			tags[i] = string(f)
		}
		desc := strings.Join(tags, ", ")
		if desc == "" {
			desc = "no optional features"
		}
		fmt.Fprintf(w, "  %-10s %s\n", name, desc)
	}
}
