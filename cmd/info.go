package cmd

import (
	"fmt"
	"io"

	"github.com/camaclean/alpsinfo/internal/alps"
	"github.com/camaclean/alpsinfo/internal/utils"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the resource summary of every command",
	Long: `Print the apid and the resource request of every aprun command.

MPMD launches (aprun ... : ...) list one entry per command, in launch order.
Nothing is printed outside of an ALPS application (null for json/yaml).`,
	Example: `  alpsinfo info
  alpsinfo info -o yaml`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	report := ctx.Summary()
	if report == nil {
		utils.PrintHint("No ALPS application data (source: %s)", ctx.Source())
	}
	return render(cmd.OutOrStdout(), report, func(w io.Writer) {
		if report != nil {
			writeReport(w, report)
		}
	})
}

func writeReport(w io.Writer, report *alps.Report) {
	fmt.Fprintf(w, "Apid: %d\n", report.Apid)
	for i, c := range report.Commands {
		fmt.Fprintf(w, "Command %d:\n", i)
		fmt.Fprintf(w, "  width:        %d\n", c.Width)
		fmt.Fprintf(w, "  depth:        %d\n", c.Depth)
		fmt.Fprintf(w, "  fixedPerNode: %d\n", c.FixedPerNode)
		fmt.Fprintf(w, "  nodeCnt:      %d\n", c.NodeCnt)
		fmt.Fprintf(w, "  cpusPerCU:    %d\n", c.CpusPerCU)
		fmt.Fprintf(w, "  pesPerSeg:    %d\n", c.PesPerSeg)
		fmt.Fprintf(w, "  nodeSegCnt:   %d\n", c.NodeSegCnt)
		fmt.Fprintf(w, "  segBits:      %d\n", c.SegBits)
		fmt.Fprintf(w, "  accel:        %s\n", c.Accel)
	}
}
