package runtime

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/confgen/pkg/domain"
	"github.com/aretw0/confgen/pkg/schema"
)

// Prompter obtains the raw operator text for one option.
// Returning "" signals that the declared default should be used.
type Prompter interface {
	Prompt(ctx context.Context, decl domain.OptionDeclaration) (string, error)
}

// PromptFunc adapts a plain function to the Prompter interface.
type PromptFunc func(ctx context.Context, decl domain.OptionDeclaration) (string, error)

func (f PromptFunc) Prompt(ctx context.Context, decl domain.OptionDeclaration) (string, error) {
	return f(ctx, decl)
}

// Collector resolves bindings to typed values by prompting for each of them.
type Collector struct {
	prompter Prompter
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) CollectorOption {
	return func(c *Collector) {
		c.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) CollectorOption {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCollector creates a collector that asks prompter for every value.
func NewCollector(prompter Prompter, opts ...CollectorOption) *Collector {
	c := &Collector{
		prompter: prompter,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect prompts once per binding, in order, and returns the typed values.
// The first failure aborts collection; no partial resolution is returned.
func (c *Collector) Collect(ctx context.Context, bindings []domain.Binding) (domain.Resolution, error) {
	resolved := make(domain.Resolution, len(bindings))

	for _, b := range bindings {
		if _, done := resolved[b.ID]; done {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := c.resolve(ctx, b)
		if err != nil {
			ev := domain.NewOptionEvent(domain.EventFailure, b)
			ev.Err = err
			c.emit(ctx, c.hooks.OnFailure, ev)
			c.logger.Debug("Option failed", "option_id", b.ID, "error", err)
			return nil, err
		}

		ev := domain.NewOptionEvent(domain.EventResolve, b)
		ev.UsedDefault = value.UsedDefault
		c.emit(ctx, c.hooks.OnResolve, ev)
		c.logger.Debug("Option resolved", "option_id", b.ID, "type", b.Type, "used_default", value.UsedDefault)

		resolved[b.ID] = value
	}

	return resolved, nil
}

func (c *Collector) resolve(ctx context.Context, b domain.Binding) (domain.ResolvedValue, error) {
	c.emit(ctx, c.hooks.OnPrompt, domain.NewOptionEvent(domain.EventPrompt, b))

	raw, err := c.prompter.Prompt(ctx, b.Declaration)
	if err != nil {
		return domain.ResolvedValue{}, err
	}

	usedDefault := false
	if raw == "" {
		if !b.Declaration.HasDefault() {
			return domain.ResolvedValue{}, &domain.MissingRequiredValueError{ID: b.ID, Name: b.Declaration.Name}
		}
		raw = b.Declaration.DefaultValue()
		usedDefault = true
	}

	typed, err := schema.Coerce(raw, b.Type)
	if err != nil {
		return domain.ResolvedValue{}, &domain.OptionError{ID: b.ID, Err: err}
	}

	return domain.ResolvedValue{
		ID:          b.ID,
		RawInput:    raw,
		Value:       typed,
		UsedDefault: usedDefault,
	}, nil
}

func (c *Collector) emit(ctx context.Context, hook func(context.Context, *domain.OptionEvent), ev *domain.OptionEvent) {
	if hook != nil {
		hook(ctx, ev)
	}
}
