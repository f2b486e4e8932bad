package runner

import (
	"log/slog"

	"github.com/aretw0/confgen/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithPrompter configures how option values are obtained.
func WithPrompter(p Prompter) Option {
	return func(r *Runner) {
		r.Prompter = p
	}
}

// WithSink configures where the rendered text is written.
func WithSink(sink ports.OutputSink) Option {
	return func(r *Runner) {
		r.Sink = sink
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithConsole configures where notices are printed.
func WithConsole(c Console) Option {
	return func(r *Runner) {
		r.Console = c
	}
}

// WithOutputPath overrides the output path declared in the schema.
func WithOutputPath(path string) Option {
	return func(r *Runner) {
		r.OutputPath = path
	}
}

// WithQuiet suppresses the start and finish notices.
func WithQuiet(quiet bool) Option {
	return func(r *Runner) {
		r.Quiet = quiet
	}
}
