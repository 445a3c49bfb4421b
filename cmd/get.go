package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/camaclean/alpsinfo/internal/alps"
	"github.com/camaclean/alpsinfo/internal/utils"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [property...]",
	Short: "Print resource properties of the first command",
	Long: `Print resource properties of the first aprun command.

Without arguments all properties are printed. Properties:
` + propertyHelp(),
	Example: `  alpsinfo get width            # aprun -n
  alpsinfo get depth nodeCount  # several properties
  alpsinfo get -o json          # all properties as JSON`,
	ValidArgsFunction: propertyCompletion,
	RunE:              runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// propertyHelp lists the property table for the command help
func propertyHelp() string {
	var sb strings.Builder
	for _, p := range alps.Properties {
		name := p.Name
		if len(p.Aliases) > 0 {
			name += " (" + strings.Join(p.Aliases, ", ") + ")"
		}
		fmt.Fprintf(&sb, "  %-40s %s\n", name, p.Description)
	}
	return sb.String()
}

// propertyCompletion completes property names not already on the command line
func propertyCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	seen := make(map[string]bool, len(args))
	for _, a := range args {
		seen[a] = true
	}
	var names []string
	for _, name := range alps.PropertyNames() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func runGet(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = alps.PropertyNames()
	}

	ctx := getContext()
	values := make(map[string]alps.Value, len(names))
	for _, name := range names {
		v, err := ctx.Property(name)
		if err != nil {
			utils.PrintHint("Valid properties: %s", strings.Join(alps.PropertyNames(), ", "))
			return err
		}
		values[name] = v
	}

	return render(cmd.OutOrStdout(), values, func(w io.Writer) {
		if len(names) == 1 {
			fmt.Fprintln(w, values[names[0]])
			return
		}
		for _, name := range names {
			fmt.Fprintf(w, "%s: %s\n", name, values[name])
		}
	})
}
