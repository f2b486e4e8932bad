package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/confgen/internal/cli"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Prompt for every option and write the configuration",
	Long: `Asks for the value of every option the template references, in order of
first appearance, and writes the rendered text to the schema's path.
An empty answer accepts the option's default.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	v, err := bindConfig(cmd)
	if err != nil {
		return err
	}

	return cli.Execute(cli.RunOptions{
		SpecPath:    v.GetString("spec"),
		OutputPath:  v.GetString("output"),
		AnswersPath: v.GetString("answers"),
		Defaults:    v.GetBool("defaults"),
		Prompt:      v.GetString("prompt"),
		Stdout:      v.GetBool("stdout"),
		Debug:       v.GetBool("debug"),
		LogFormat:   v.GetString("log-format"),
		MetricsFile: v.GetString("metrics-file"),
		NoBanner:    v.GetBool("no-banner"),
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		ErrOut:      cmd.ErrOrStderr(),
	})
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write to this path instead of the schema's path")
	cmd.Flags().String("answers", "", "Answer prompts from a YAML/JSON file of id: value pairs")
	cmd.Flags().Bool("defaults", false, "Accept every default without prompting")
	cmd.Flags().String("prompt", cli.PromptAuto, "Prompt style: auto, text or survey")
	cmd.Flags().Bool("stdout", false, "Print the configuration instead of writing it")
	cmd.Flags().String("metrics-file", "", "Write run metrics in Prometheus textfile format")
	cmd.Flags().Bool("no-banner", false, "Do not print the banner")
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)

	// Running confgen without a subcommand generates.
	addGenerateFlags(rootCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runGenerate
}
