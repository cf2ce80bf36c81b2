package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorconv-mcp/internal/colorconv"
	"github.com/ironsheep/colorconv-mcp/internal/kernel"
	"github.com/ironsheep/colorconv-mcp/internal/tensor"
)

var listCmd = &cobra.Command{
	Use:       "list [colorspaces|conversions|backends]",
	Short:     "List colorspaces, conversions or backends",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"colorspaces", "conversions", "backends"},
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	what := ""
	if len(args) == 1 {
		what = args[0]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if what == "" || what == "colorspaces" {
		listColorspaces(w)
	}
	if what == "" || what == "conversions" {
		listConversions(w)
	}
	if what == "" || what == "backends" {
		listBackends(w)
	}
	return w.Flush()
}

func listColorspaces(w io.Writer) {
	fmt.Fprintln(w, "COLORSPACE\tCHANNELS\tNDIM")
	for _, cs := range tensor.Colorspaces() {
		fmt.Fprintf(w, "%s\t%d\t%d\n", cs, cs.Channels(), tensor.ExpectedDims(cs))
	}
	fmt.Fprintln(w)
}

func listConversions(w io.Writer) {
	fmt.Fprintln(w, "CONVERSION\tSOURCE\tTARGET")
	for _, conv := range colorconv.Conversions() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", conv.Name, conv.Source, conv.Target)
	}
	fmt.Fprintln(w)
}

func listBackends(w io.Writer) {
	fmt.Fprintln(w, "BACKEND")
	for _, name := range kernel.Backends() {
		fmt.Fprintln(w, name)
	}
}
