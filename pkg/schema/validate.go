package schema

import (
	"fmt"

	"github.com/aretw0/confgen/pkg/domain"
)

// Lint checks every declaration of spec, referenced or not, and returns all
// problems found. Defaults are coerced with their declared type so a bad
// default is caught before an operator ever accepts it.
func Lint(spec *domain.TemplateSpec) error {
	if spec == nil {
		return &AggregateError{Errors: []error{&ValidationError{Key: "spec", Reason: "missing"}}}
	}

	var errs []error
	if spec.Template == "" {
		errs = append(errs, &ValidationError{Key: "template", Reason: "required"})
	}
	if spec.Path == "" {
		errs = append(errs, &ValidationError{Key: "path", Reason: "required"})
	}

	seen := make(map[string]bool, len(spec.Options))
	for i, opt := range spec.Options {
		if opt.ID == "" {
			errs = append(errs, &ValidationError{Key: "options", Reason: fmt.Sprintf("entry %d has no id", i)})
			continue
		}
		if seen[opt.ID] {
			errs = append(errs, &domain.DuplicateOptionError{ID: opt.ID})
			continue
		}
		seen[opt.ID] = true

		t, err := ParseType(opt.Type)
		if err != nil {
			errs = append(errs, &domain.InvalidOptionTypeError{ID: opt.ID, Type: opt.Type})
			continue
		}
		if opt.HasDefault() {
			if _, err := t.Coerce(opt.DefaultValue()); err != nil {
				errs = append(errs, &ValidationError{Key: opt.ID, Reason: "default: " + err.Error()})
			}
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
