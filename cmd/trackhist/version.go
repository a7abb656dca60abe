package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/trackhist"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trackhist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trackhist version %s\n", strings.TrimSpace(trackhist.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
