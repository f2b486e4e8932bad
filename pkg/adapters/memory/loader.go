package memory

import (
	"context"

	"github.com/aretw0/confgen/pkg/domain"
)

// Loader implements ports.SpecLoader from an in-memory spec.
type Loader struct {
	spec *domain.TemplateSpec
	err  error
}

// NewLoader creates a loader returning a copy of spec on every Load.
func NewLoader(spec domain.TemplateSpec) *Loader {
	return &Loader{spec: &spec}
}

// NewFailingLoader creates a loader whose Load always fails with a SchemaLoadError.
func NewFailingLoader(path string, err error) *Loader {
	return &Loader{err: &domain.SchemaLoadError{Path: path, Err: err}}
}

// Load returns the stored spec. Options are copied so callers cannot mutate the loader.
func (l *Loader) Load(ctx context.Context) (*domain.TemplateSpec, error) {
	if l.err != nil {
		return nil, l.err
	}
	copied := *l.spec
	copied.Options = append([]domain.OptionDeclaration(nil), l.spec.Options...)
	return &copied, nil
}
