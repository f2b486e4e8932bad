package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aretw0/confgen/internal/cli"
	"github.com/aretw0/confgen/internal/presentation/tui"
	"github.com/aretw0/confgen/pkg/domain"
)

var rootCmd = &cobra.Command{
	Use:   "confgen",
	Short: "Generate configuration files from a template and typed prompts",
	Long: `confgen reads a schema (.confgen.yaml by default) holding a template with
${{id}} placeholders and the typed options behind them, asks for each value
and writes the rendered configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Any failure is printed as a single red line on stderr and exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		tui.PrintError(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage is the text shown for a failed run.
func errorMessage(err error) string {
	if errors.Is(err, cli.ErrInterrupted) {
		return "Interrupted."
	}
	return err.Error()
}

func init() {
	rootCmd.PersistentFlags().String("spec", domain.DefaultSpecFile, "Schema file holding the template and options")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().String("log-format", "text", "Debug log format: text or json")
}

// bindConfig layers CONFGEN_* environment variables under the command's flags.
// Explicit flags win over the environment, which wins over flag defaults.
func bindConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("CONFGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return v, bindErr
}
