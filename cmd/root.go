package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/camaclean/alpsinfo/internal/config"
	"github.com/camaclean/alpsinfo/internal/utils"
	"github.com/spf13/cobra"
)

var (
	debugMode  bool
	quietMode  bool
	outputFlag = outputFormat(config.OutputText)
)

var rootCmd = &cobra.Command{
	Use:   "alpsinfo",
	Short: "alpsinfo: Query ALPS placement information for the running aprun application.",
	Long: `Query ALPS placement information for the running aprun application.

Inside an aprun launch (ALPS_APP_ID set) the data comes from libalps.
Outside of ALPS, node and PE counts and the node list come from the PBS job environment.`,
	Version:       config.VERSION,
	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Step 1: Load defaults
		config.LoadDefaults()

		// Step 2: Initialize Viper (read config file, env vars)
		if err := config.InitViper(); err != nil {
			utils.PrintDebug("Error reading config file: %v", err)
		}

		// Step 3: Load values from Viper into Global config
		config.LoadFromViper()

		// Step 4: Apply command-line flags (highest priority)
		if cmd.Flags().Changed("output") {
			config.Global.Output = string(outputFlag)
		}
		if !config.IsValidOutput(config.Global.Output) {
			return fmt.Errorf("invalid output format %q (use %s)",
				config.Global.Output, strings.Join(config.OutputFormats(), ", "))
		}
		if quietMode {
			utils.QuietMode = true
			config.Global.Quiet = true
		}
		if debugMode {
			utils.DebugMode = true
			config.Global.Debug = true
			utils.PrintDebug("Debug mode enabled")
			utils.PrintDebug("alpsinfo Version: %s", utils.StyleInfo(config.VERSION))
			utils.PrintDebug("Apid variable: %s", config.Global.ApidVar)
			utils.PrintDebug("PBS variables: %s, %s, %s",
				config.Global.NodeCountVar, config.Global.WidthVar, config.Global.NodeFileVar)
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	closeContext()
	if err != nil {
		utils.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Subcommands are attached to rootCmd in their respective init() functions
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress informational messages")
	rootCmd.PersistentFlags().VarP(&outputFlag, "output", "o", "Output format: text, json or yaml")
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats(), cobra.ShellCompDirectiveNoFileComp
	})
}
