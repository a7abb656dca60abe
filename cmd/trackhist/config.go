package main

import (
	"github.com/aretw0/trackhist/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, overrides, _ := globalFlags(cmd)
		settings, err := config.Load(configPath, overrides)
		if err != nil {
			return err
		}
		out, err := settings.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
