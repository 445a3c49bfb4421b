package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	nodesPerPe     bool
	nodesHostnames bool
	nodesDelimiter string
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Print the nodes used by the application",
	Long: `Print the nodes used by the application.

By default consecutive PEs on the same node are collapsed into one entry.
Use --per-pe to print one entry per PE.

Outside of ALPS the list is read from the PBS node file ($PBS_NODEFILE),
one numeric node id per line.`,
	Example: `  alpsinfo nodes                  # unique node ids
  alpsinfo nodes --hostnames -d,  # nid00012,nid00013
  alpsinfo nodes --per-pe -o json`,
	Args: cobra.NoArgs,
	RunE: runNodes,
}

func init() {
	nodesCmd.Flags().BoolVar(&nodesPerPe, "per-pe", false, "Print one entry per PE instead of per node")
	nodesCmd.Flags().BoolVar(&nodesHostnames, "hostnames", false, "Print nidNNNNN hostnames instead of numeric ids")
	nodesCmd.Flags().StringVarP(&nodesDelimiter, "delimiter", "d", "\n", "Separator between entries (text output)")
	rootCmd.AddCommand(nodesCmd)
}

func runNodes(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var entries []string
	var data interface{}
	switch {
	case nodesPerPe && nodesHostnames:
		entries = ctx.PerPeNodeHostnames()
		data = entries
	case nodesPerPe:
		ids := ctx.PerPeNodeIDs()
		entries, data = itoaAll(ids), ids
	case nodesHostnames:
		entries = ctx.UniqueNodeHostnames()
		data = entries
	default:
		ids := ctx.UniqueNodeIDs()
		entries, data = itoaAll(ids), ids
	}

	return render(cmd.OutOrStdout(), data, func(w io.Writer) {
		if len(entries) == 0 {
			return
		}
		fmt.Fprint(w, strings.Join(entries, nodesDelimiter))
		fmt.Fprintln(w)
	})
}

func itoaAll(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprint(id)
	}
	return out
}
