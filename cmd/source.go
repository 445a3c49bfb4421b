package cmd

import (
	"fmt"
	"io"

	"github.com/camaclean/alpsinfo/internal/alps"
	"github.com/camaclean/alpsinfo/internal/config"
	"github.com/camaclean/alpsinfo/internal/utils"
	"github.com/spf13/cobra"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Display which data source answers queries",
	Long: `Display the data source used for placement queries.

  alps              ALPS application id found and libalps answered
  alps-unavailable  ALPS application id found but libalps could not answer
  pbs               no ALPS application id; PBS job variables are used

Also shows the environment variables consulted and their current values.`,
	Example: `  alpsinfo source
  alpsinfo source -o json`,
	Args: cobra.NoArgs,
	RunE: runSource,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}

type sourceVar struct {
	Name  string  `json:"name" yaml:"name"`
	Value *string `json:"value" yaml:"value"`
}

type sourceOutput struct {
	Source    alps.Source `json:"source" yaml:"source"`
	Apid      *uint64     `json:"apid" yaml:"apid"`
	QueryErr  string      `json:"queryError,omitempty" yaml:"queryError,omitempty"`
	PbsJobID  *string     `json:"pbsJobId" yaml:"pbsJobId"`
	Variables []sourceVar `json:"variables" yaml:"variables"`
}

func runSource(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	out := sourceOutput{Source: ctx.Source()}
	if apid, ok := ctx.Apid(); ok {
		v := uint64(apid)
		out.Apid = &v
	}
	if err := ctx.QueryErr(); err != nil {
		out.QueryErr = err.Error()
	}
	if id, ok := ctx.Fallback().JobID(); ok {
		out.PbsJobID = &id
	}
	for _, name := range []string{
		config.Global.ApidVar,
		config.Global.NodeCountVar,
		config.Global.WidthVar,
		config.Global.NodeFileVar,
	} {
		sv := sourceVar{Name: name}
		if val, ok := lookupEnv(name); ok {
			sv.Value = &val
		}
		out.Variables = append(out.Variables, sv)
	}

	return render(cmd.OutOrStdout(), out, func(w io.Writer) {
		fmt.Fprintln(w, "Source Information:")
		fmt.Fprintf(w, "  Source:    %s\n", styleSource(out.Source))
		if out.Apid != nil {
			fmt.Fprintf(w, "  Apid:      %s\n", utils.StyleNumber(*out.Apid))
		} else {
			fmt.Fprintf(w, "  Apid:      %s\n", utils.StyleWarning("not set"))
		}
		if out.QueryErr != "" {
			fmt.Fprintf(w, "  Error:     %s\n", utils.StyleError(out.QueryErr))
		}
		if out.PbsJobID != nil {
			fmt.Fprintf(w, "  PBS job:   %s\n", utils.StyleName(*out.PbsJobID))
		} else {
			fmt.Fprintf(w, "  PBS job:   %s\n", utils.StyleInfo("none"))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Environment:")
		for _, sv := range out.Variables {
			if sv.Value != nil {
				fmt.Fprintf(w, "  %s=%s\n", utils.StyleName(sv.Name), *sv.Value)
			} else {
				fmt.Fprintf(w, "  %s %s\n", utils.StyleName(sv.Name), utils.StyleInfo("(unset)"))
			}
		}
	})
}

func styleSource(s alps.Source) string {
	switch s {
	case alps.SourceALPS:
		return utils.StyleSuccess(string(s))
	case alps.SourceALPSUnavailable:
		return utils.StyleError(string(s))
	default:
		return utils.StyleWarning(string(s))
	}
}
