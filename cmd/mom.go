package cmd

import (
	"fmt"
	"io"

	"github.com/camaclean/alpsinfo/internal/alps"
	"github.com/spf13/cobra"
)

var momHostname bool

var momCmd = &cobra.Command{
	Use:     "mom",
	Aliases: []string{"control"},
	Short:   "Print the control (MOM) node of the application",
	Long: `Print the node running aprun for the current application.

Prints "unknown" (null for json/yaml) when ALPS has no placement data.`,
	Example: `  alpsinfo mom
  alpsinfo mom --hostname`,
	Args: cobra.NoArgs,
	RunE: runMom,
}

func init() {
	momCmd.Flags().BoolVar(&momHostname, "hostname", false, "Print the nidNNNNN hostname instead of the numeric id")
	rootCmd.AddCommand(momCmd)
}

type momOutput struct {
	Nid      int    `json:"nid" yaml:"nid"`
	Hostname string `json:"hostname" yaml:"hostname"`
}

func runMom(cmd *cobra.Command, args []string) error {
	nid, ok := getContext().ControlNodeID()
	var data *momOutput
	if ok {
		data = &momOutput{Nid: nid, Hostname: alps.FormatNodeID(nid)}
	}
	return render(cmd.OutOrStdout(), data, func(w io.Writer) {
		switch {
		case data == nil:
			fmt.Fprintln(w, "unknown")
		case momHostname:
			fmt.Fprintln(w, data.Hostname)
		default:
			fmt.Fprintln(w, data.Nid)
		}
	})
}
