package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/confgen"
	"github.com/aretw0/confgen/pkg/domain"
)

// createEngine loads the schema with standard CLI conventions.
func createEngine(ctx context.Context, opts RunOptions, logger *slog.Logger, hooks domain.LifecycleHooks) (*confgen.Engine, error) {
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	return confgen.New(ctx, opts.SpecPath,
		confgen.WithLogger(logger),
		confgen.WithLifecycleHooks(hooks),
	)
}
