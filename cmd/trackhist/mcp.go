package main

import (
	"context"
	"log"
	"os"

	"github.com/aretw0/trackhist/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes stored runs to AI agents over MCP on Standard Input/Output.

Tools:
- list_runs: IDs of stored runs
- get_histogram: edges and counts of hPt or hVtxZ for a run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, overrides, debug := globalFlags(cmd)

		// Logs must not corrupt JSON-RPC on stdout.
		log.SetOutput(os.Stderr)

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.ServeMCP(sigCtx, cli.MCPOptions{
			ConfigPath: configPath,
			Overrides:  overrides,
			Debug:      debug,
			Stdin:      cmd.InOrStdin(),
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
