package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trackhist",
	Short: "trackhist fills track pt and vertex-Z histograms from collision data",
	Long: `trackhist reads collisions as NDJSON, applies the vertex and track selection
and fills the hPt and hVtxZ histograms. Runs are stored in memory or Redis and
can be exported as YODA and PNG or served over HTTP and MCP.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML settings file")
	rootCmd.PersistentFlags().StringArrayP("set", "s", nil, "Override a setting, e.g. --set ptMax=5 (repeatable)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// globalFlags returns the persistent flags shared by all commands.
func globalFlags(cmd *cobra.Command) (configPath string, overrides []string, debug bool) {
	configPath, _ = cmd.Flags().GetString("config")
	overrides, _ = cmd.Flags().GetStringArray("set")
	debug, _ = cmd.Flags().GetBool("debug")
	return configPath, overrides, debug
}
