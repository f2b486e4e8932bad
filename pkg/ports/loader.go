package ports

import (
	"context"

	"github.com/aretw0/confgen/pkg/domain"
)

// SpecLoader defines how the engine retrieves the schema document.
type SpecLoader interface {
	// Load returns the parsed schema or a *domain.SchemaLoadError.
	Load(ctx context.Context) (*domain.TemplateSpec, error)
}

// SpecLoaderFunc adapts a function to SpecLoader.
type SpecLoaderFunc func(ctx context.Context) (*domain.TemplateSpec, error)

func (f SpecLoaderFunc) Load(ctx context.Context) (*domain.TemplateSpec, error) {
	return f(ctx)
}

// StaticSpec returns a loader that always yields spec.
func StaticSpec(spec *domain.TemplateSpec) SpecLoader {
	return SpecLoaderFunc(func(context.Context) (*domain.TemplateSpec, error) {
		return spec, nil
	})
}
