package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/confgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of confgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "confgen version %s\n", strings.TrimSpace(confgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
