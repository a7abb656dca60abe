package main

import (
	"fmt"

	"github.com/aretw0/trackhist/internal/config"
	"github.com/spf13/cobra"
)

var axisCmd = &cobra.Command{
	Use:   "axis",
	Short: "Print the pt bin edges for the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, overrides, _ := globalFlags(cmd)
		settings, err := config.Load(configPath, overrides)
		if err != nil {
			return err
		}
		ax, err := settings.PtAxis()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %d bins on [%g, %g]\n", ax.NBins(), ax.Min(), ax.Max())
		for _, e := range ax.Edges() {
			fmt.Fprintf(out, "%g\n", e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(axisCmd)
}
