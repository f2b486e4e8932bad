package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/confgen/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a schema without prompting",
	Long: `Loads the schema, checks every declaration and binds every placeholder.
Options the template never references are reported as warnings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := bindConfig(cmd)
		if err != nil {
			return err
		}
		_, err = cli.Validate(cmd.Context(), v.GetString("spec"), cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
