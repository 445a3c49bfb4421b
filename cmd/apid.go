package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var apidCmd = &cobra.Command{
	Use:   "apid",
	Short: "Print the ALPS application id",
	Long: `Print the ALPS application id of the current aprun launch.

Prints "unknown" (null for json/yaml) when ALPS_APP_ID is not set.`,
	Example: `  alpsinfo apid
  alpsinfo apid -o json`,
	Args: cobra.NoArgs,
	RunE: runApid,
}

func init() {
	rootCmd.AddCommand(apidCmd)
}

type apidOutput struct {
	Apid *uint64 `json:"apid" yaml:"apid"`
}

func runApid(cmd *cobra.Command, args []string) error {
	apid, ok := getContext().Apid()
	out := apidOutput{}
	if ok {
		v := uint64(apid)
		out.Apid = &v
	}
	return render(cmd.OutOrStdout(), out, func(w io.Writer) {
		if ok {
			fmt.Fprintln(w, apid)
		} else {
			fmt.Fprintln(w, "unknown")
		}
	})
}
