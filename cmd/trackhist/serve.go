package main

import (
	"context"

	"github.com/aretw0/trackhist/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [events.ndjson...]",
	Short: "Start the read-only HTTP server",
	Long: `Serves stored runs as JSON, YODA and PNG, plus Prometheus metrics on /metrics.
Event files given as arguments are processed and stored before the server starts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, overrides, debug := globalFlags(cmd)
		addr, _ := cmd.Flags().GetString("addr")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		return cli.Serve(sigCtx, cli.ServeOptions{
			ConfigPath: configPath,
			Overrides:  overrides,
			Addr:       addr,
			Events:     args,
			Debug:      debug,
			Stderr:     cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
