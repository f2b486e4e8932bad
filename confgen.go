package confgen

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/confgen/internal/adapters/file"
	"github.com/aretw0/confgen/internal/compiler"
	"github.com/aretw0/confgen/internal/runtime"
	"github.com/aretw0/confgen/pkg/domain"
	"github.com/aretw0/confgen/pkg/ports"
)

// Prompter obtains the raw operator text for one option.
type Prompter = runtime.Prompter

// PromptFunc adapts a plain function to the Prompter interface.
type PromptFunc = runtime.PromptFunc

// Engine is the high-level entry point for the confgen library.
// It holds one loaded TemplateSpec and exposes the bind, collect and render
// stages individually or chained through Generate.
type Engine struct {
	spec   *domain.TemplateSpec
	loader ports.SpecLoader
	binder *compiler.Binder
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom SpecLoader, bypassing the default file loader.
func WithLoader(l ports.SpecLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithSpec uses spec directly instead of loading a document.
func WithSpec(spec domain.TemplateSpec) Option {
	return WithLoader(ports.StaticSpec(&spec))
}

// WithLifecycleHooks registers observability hooks for collection.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New loads the schema and returns an Engine ready to generate.
// By default the schema is read from specPath (".confgen.yaml" when empty).
// If WithLoader or WithSpec is provided, specPath is ignored.
func New(ctx context.Context, specPath string, opts ...Option) (*Engine, error) {
	eng := &Engine{binder: compiler.NewBinder()}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		eng.loader = file.NewSpecLoader(specPath)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	spec, err := eng.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, &domain.SchemaLoadError{Path: specPath, Err: fmt.Errorf("loader returned no spec")}
	}
	eng.spec = spec
	eng.logger.Debug("Schema loaded", "output", spec.Path, "options", len(spec.Options))

	return eng, nil
}

// Spec returns the loaded schema. Callers must not modify it.
func (e *Engine) Spec() *domain.TemplateSpec {
	return e.spec
}

// Bind resolves the template's placeholders to their declarations.
func (e *Engine) Bind() ([]domain.Binding, error) {
	return e.binder.Bind(e.spec.Template, e.spec.Options)
}

// Unused lists declared options the template never references.
func (e *Engine) Unused() []string {
	return e.binder.Unused(e.spec.Template, e.spec.Options)
}

// Collect prompts for every binding through p.
func (e *Engine) Collect(ctx context.Context, bindings []domain.Binding, p Prompter) (domain.Resolution, error) {
	collector := runtime.NewCollector(p,
		runtime.WithHooks(e.hooks),
		runtime.WithLogger(e.logger),
	)
	return collector.Collect(ctx, bindings)
}

// Render substitutes resolved values into the template. It fails rather
// than return text that still references an unresolved option.
func (e *Engine) Render(resolved domain.Resolution) (string, error) {
	if missing := runtime.Unresolved(e.binder.References(e.spec.Template), resolved); len(missing) > 0 {
		return "", &domain.UnresolvedError{IDs: missing}
	}
	return runtime.Render(e.spec.Template, resolved), nil
}

// Generate runs bind, collect and render in sequence and returns the final text.
// Binding errors surface before any prompt is shown.
func (e *Engine) Generate(ctx context.Context, p Prompter) (string, domain.Resolution, error) {
	bindings, err := e.Bind()
	if err != nil {
		return "", nil, err
	}
	e.logger.Debug("Template bound", "placeholders", len(bindings))

	resolved, err := e.Collect(ctx, bindings, p)
	if err != nil {
		return "", nil, err
	}

	text, err := e.Render(resolved)
	if err != nil {
		return "", nil, err
	}
	return text, resolved, nil
}
