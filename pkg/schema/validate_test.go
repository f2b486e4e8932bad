package schema

import (
	"errors"
	"testing"

	"github.com/aretw0/confgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLint_Valid(t *testing.T) {
	spec := &domain.TemplateSpec{
		Template: "port=${{port}}",
		Path:     "out.conf",
		Options: []domain.OptionDeclaration{
			{ID: "port", Name: "Port", Type: "Number", Default: strPtr("8080")},
			{ID: "debug", Name: "Debug", Type: "Boolean"},
			{ID: "unused", Name: "Unused"},
		},
	}
	assert.NoError(t, Lint(spec))
}

func TestLint_CollectsEveryProblem(t *testing.T) {
	spec := &domain.TemplateSpec{
		Options: []domain.OptionDeclaration{
			{ID: "port", Type: "Integer"},
			{ID: "port", Type: "Number"},
			{ID: "debug", Type: "Boolean", Default: strPtr("perhaps")},
			{Name: "Nameless"},
		},
	}

	err := Lint(spec)
	require.Error(t, err)

	errs := ValidationErrors(err)
	require.Len(t, errs, 6)

	assert.True(t, errors.Is(err, domain.ErrInvalidOptionType))
	assert.True(t, errors.Is(err, domain.ErrDuplicateOption))

	var keys []string
	for _, e := range errs {
		var ve *ValidationError
		if errors.As(e, &ve) {
			keys = append(keys, ve.Key)
		}
	}
	assert.Equal(t, []string{"template", "path", "debug", "options"}, keys)
}

func TestLint_Nil(t *testing.T) {
	assert.Error(t, Lint(nil))
}

func TestAggregateError_Message(t *testing.T) {
	single := &AggregateError{Errors: []error{&ValidationError{Key: "path", Reason: "required"}}}
	assert.Equal(t, `field "path": required`, single.Error())

	multi := &AggregateError{Errors: []error{
		&ValidationError{Key: "path", Reason: "required"},
		&ValidationError{Key: "template", Reason: "required"},
	}}
	assert.Contains(t, multi.Error(), "2 validation errors")
}
