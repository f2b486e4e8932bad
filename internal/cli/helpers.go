package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/google/uuid"

	"github.com/aretw0/confgen/internal/logging"
	"github.com/aretw0/confgen/pkg/domain"
	"github.com/aretw0/confgen/pkg/runner"
)

// ErrInterrupted is returned when the operator interrupts a run.
var ErrInterrupted = errors.New("interrupted")

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger and tags it with a run id.
// Without --debug every record is discarded.
func createLogger(opts RunOptions) (*slog.Logger, error) {
	if !opts.Debug {
		return logging.NewNop(), nil
	}
	format, err := logging.ParseFormat(opts.LogFormat)
	if err != nil {
		return nil, err
	}
	var logger *slog.Logger
	if opts.ErrOut != nil {
		logger = logging.NewWithWriter(opts.ErrOut, slog.LevelDebug, format)
	} else {
		logger = logging.New(slog.LevelDebug, format)
	}
	return logger.With("run_id", uuid.NewString()), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnPrompt: func(ctx context.Context, e *domain.OptionEvent) {
			logger.Debug("Prompt", "option_id", e.OptionID, "type", e.OptionType)
		},
		OnResolve: func(ctx context.Context, e *domain.OptionEvent) {
			logger.Debug("Resolved", "option_id", e.OptionID, "used_default", e.UsedDefault)
		},
		OnFailure: func(ctx context.Context, e *domain.OptionEvent) {
			logger.Debug("Failed", "option_id", e.OptionID, "error", e.Err)
		},
	}
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, runner.ErrAborted)
}

// handleExecutionError maps an operator interrupt to ErrInterrupted so the
// boundary prints one uniform line; other errors pass through unchanged.
func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return ErrInterrupted
	}
	return err
}

func writerOr(w io.Writer, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
