package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/confgen"
	"github.com/aretw0/confgen/internal/adapters/file"
	"github.com/aretw0/confgen/pkg/domain"
	"github.com/aretw0/confgen/pkg/ports"
)

// Prompter obtains the raw operator text for one option.
type Prompter = confgen.Prompter

// PromptFunc adapts a plain function to the Prompter interface.
type PromptFunc = confgen.PromptFunc

// Runner drives a single generation: notices, prompting, rendering, writing.
type Runner struct {
	// Prompter answers every option. Required.
	Prompter Prompter

	// Sink receives the rendered text.
	// If nil, files are written atomically to disk.
	Sink ports.OutputSink

	// Console prints the start and finish notices.
	// If nil, notices are discarded.
	Console Console

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// OutputPath overrides the schema's path when set.
	OutputPath string

	// Quiet suppresses notices even when a Console is set.
	Quiet bool
}

// Result describes a successful run.
type Result struct {
	Path       string
	Text       string
	Resolution domain.Resolution
	Duration   time.Duration
}

// NewRunner creates a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run generates the configuration for eng and writes it.
// On any failure nothing is written and the error is returned unchanged.
func (r *Runner) Run(ctx context.Context, eng *confgen.Engine) (*Result, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if r.Prompter == nil {
		return nil, fmt.Errorf("prompter is required")
	}

	logger := r.logger()
	console := r.console()
	sink := r.sink()

	path := r.OutputPath
	if path == "" {
		path = eng.Spec().Path
	}

	start := time.Now()
	console.Info("Starting interactive configuration setup.")
	console.Info(fmt.Sprintf("Configuration will be saved in %s.", path))

	text, resolved, err := eng.Generate(ctx, r.Prompter)
	if err != nil {
		logger.Debug("Generation failed", "error", err)
		return nil, err
	}

	if err := sink.Write(ctx, path, text); err != nil {
		logger.Debug("Write failed", "path", path, "error", err)
		return nil, err
	}

	console.Info("Finished interactive configuration setup.")

	res := &Result{
		Path:       path,
		Text:       text,
		Resolution: resolved,
		Duration:   time.Since(start),
	}
	logger.Info("Configuration written", "path", path, "options", len(resolved), "bytes", len(text), "duration", res.Duration)
	return res, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r *Runner) console() Console {
	if r.Console == nil || r.Quiet {
		return discardConsole{}
	}
	return r.Console
}

func (r *Runner) sink() ports.OutputSink {
	if r.Sink != nil {
		return r.Sink
	}
	return file.NewSink()
}
