package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aretw0/confgen"
	"github.com/aretw0/confgen/internal/adapters/file"
	"github.com/aretw0/confgen/internal/metrics"
	"github.com/aretw0/confgen/internal/presentation/tui"
	"github.com/aretw0/confgen/pkg/domain"
	"github.com/aretw0/confgen/pkg/runner"
)

// RunOptions contains all the configuration for the generate command.
type RunOptions struct {
	SpecPath    string
	OutputPath  string
	AnswersPath string
	Defaults    bool
	Prompt      string // auto, text or survey
	Stdout      bool
	Debug       bool
	LogFormat   string // text or json
	MetricsFile string
	NoBanner    bool

	// Standard streams; nil means the process streams.
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Execute handles the generate command under a signal-aware context.
func Execute(opts RunOptions) error {
	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	_, err := Generate(sigCtx, opts)
	return err
}

// Generate performs one run and returns its result.
// Prompts and notices go to Out, or to ErrOut when the rendering itself is
// printed to Out.
func Generate(ctx context.Context, opts RunOptions) (*runner.Result, error) {
	in := readerOr(opts.In, os.Stdin)
	out := writerOr(opts.Out, os.Stdout)
	errOut := writerOr(opts.ErrOut, os.Stderr)

	logger, err := createLogger(opts)
	if err != nil {
		return nil, err
	}

	uiOut := out
	if opts.Stdout {
		uiOut = errOut
	}
	console := tui.NewConsole(uiOut)

	var recorder *metrics.Recorder
	hooks := domain.LifecycleHooks{}
	if opts.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		hooks = recorder.Hooks()
	}

	eng, err := createEngine(ctx, opts, logger, hooks)
	if err != nil {
		return nil, handleExecutionError(err)
	}

	prompter, err := selectPrompter(opts, in, console)
	if err != nil {
		return nil, err
	}

	if !opts.NoBanner && !opts.Stdout && opts.interactive() {
		tui.PrintBanner(uiOut, strings.TrimSpace(confgen.Version))
	}

	runnerOpts := []runner.Option{
		runner.WithPrompter(prompter),
		runner.WithConsole(console),
		runner.WithLogger(logger),
		runner.WithOutputPath(opts.OutputPath),
		runner.WithQuiet(opts.Stdout),
	}
	if opts.Stdout {
		runnerOpts = append(runnerOpts, runner.WithSink(&file.WriterSink{W: out}))
	}

	start := time.Now()
	res, runErr := runner.NewRunner(runnerOpts...).Run(ctx, eng)

	if recorder != nil {
		recorder.ObserveRun(time.Since(start), runErr)
		if err := recorder.WriteTextfile(opts.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics", "path", opts.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		logger.Debug("Run failed", "error", runErr)
		return nil, handleExecutionError(runErr)
	}
	return res, nil
}

func readerOr(r io.Reader, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}
