package main

import (
	"context"

	"github.com/aretw0/trackhist/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [events.ndjson]",
	Short: "Fill the histograms from an events file",
	Long: `Processes one NDJSON file of collisions ("-" or no argument reads stdin),
stores the resulting run and prints a summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, overrides, debug := globalFlags(cmd)
		input := "-"
		if len(args) > 0 {
			input = args[0]
		}
		runID, _ := cmd.Flags().GetString("run-id")
		jsonMode, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		_, err := cli.Execute(sigCtx, cli.RunOptions{
			ConfigPath: configPath,
			Overrides:  overrides,
			Input:      input,
			RunID:      runID,
			Debug:      debug,
			JSON:       jsonMode,
			Quiet:      quiet,
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
		})
		return cli.HandleExecutionError(err)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("run-id", "", "Run ID (default: random UUID)")
	runCmd.Flags().Bool("json", false, "Print the run as JSON")
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print a summary")
}
