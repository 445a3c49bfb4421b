package cmd

import (
	"fmt"
	"os"

	"github.com/camaclean/alpsinfo/internal/config"
	"github.com/camaclean/alpsinfo/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeysCompletion returns config keys for shell completion
func configKeysCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.Keys, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect alpsinfo configuration",
	Long: `Inspect alpsinfo configuration settings.

Configuration priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (ALPSINFO_*)
  3. User config file (~/.config/alpsinfo/config.yaml)
  4. Home config file (~/.alpsinfo/config.yaml)
  5. System config file (/etc/alpsinfo/config.yaml)
  6. Defaults

Example config.yaml:
  output: json
  env:
    apid: ALPS_APP_ID
    node_count: PBS_NUM_NODES
    width: PBS_NP
    node_file: PBS_NODEFILE`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display current configuration values and their sources.

Shows:
  - Config file search paths and which one is in use
  - All configuration settings
  - Environment variable overrides`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, utils.StyleTitle("Config File Search Paths:"))
		foundActive := false
		for i, sp := range config.GetConfigSearchPaths() {
			status := ""
			if sp.InUse {
				status = " " + utils.StyleSuccess("(in use)")
				foundActive = true
			} else if sp.Exists {
				status = " " + utils.StyleInfo("(exists)")
			}
			fmt.Fprintf(w, "  %d. [%s] %s%s\n", i+1, sp.Type, sp.Path, status)
		}
		if !foundActive {
			fmt.Fprintf(w, "  %s (defaults in use)\n", utils.StyleWarning("No config file found"))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, utils.StyleTitle("Current Configuration:"))
		fmt.Fprintf(w, "  output:          %s\n", config.Global.Output)
		fmt.Fprintf(w, "  env.apid:        %s\n", config.Global.ApidVar)
		fmt.Fprintf(w, "  env.node_count:  %s\n", config.Global.NodeCountVar)
		fmt.Fprintf(w, "  env.width:       %s\n", config.Global.WidthVar)
		fmt.Fprintf(w, "  env.node_file:   %s\n", config.Global.NodeFileVar)
		fmt.Fprintln(w)

		fmt.Fprintln(w, utils.StyleTitle("Environment Variable Overrides:"))
		hasEnvOverrides := false
		for _, key := range config.Keys {
			envVar := config.EnvVarFor(key)
			if val := os.Getenv(envVar); val != "" {
				fmt.Fprintf(w, "  %s=%s\n", envVar, val)
				hasEnvOverrides = true
			}
		}
		if !hasEnvOverrides {
			fmt.Fprintf(w, "  %s\n", utils.StyleInfo("none"))
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value.

Examples:
  alpsinfo config get output
  alpsinfo config get env.node_file`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: configKeysCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		value := viper.Get(args[0])
		if value == nil {
			utils.PrintHint("Known keys: %v", config.Keys)
			return fmt.Errorf("unknown config key: %s", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print config file search paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, sp := range config.GetConfigSearchPaths() {
			fmt.Fprintln(cmd.OutOrStdout(), sp.Path)
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathsCmd)

	rootCmd.AddCommand(configCmd)
}
