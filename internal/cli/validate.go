package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/confgen"
	"github.com/aretw0/confgen/internal/adapters/file"
	"github.com/aretw0/confgen/internal/presentation/tui"
	"github.com/aretw0/confgen/pkg/schema"
)

// ValidateReport summarizes a schema that passed validation.
type ValidateReport struct {
	Placeholders int
	Unused       []string
	UnknownKeys  []string
}

// Validate checks a schema without prompting: document lint, then binding of
// every placeholder. Unreferenced options and keys no field reads are
// reported as warnings.
func Validate(ctx context.Context, specPath string, out io.Writer) (*ValidateReport, error) {
	console := tui.NewConsole(writerOr(out, os.Stdout))

	eng, err := confgen.New(ctx, specPath)
	if err != nil {
		return nil, err
	}

	if err := schema.Lint(eng.Spec()); err != nil {
		return nil, err
	}

	bindings, err := eng.Bind()
	if err != nil {
		return nil, err
	}

	unknown, err := file.UnknownKeys(file.NewSpecLoader(specPath).Path)
	if err != nil {
		return nil, err
	}

	report := &ValidateReport{
		Placeholders: len(bindings),
		Unused:       eng.Unused(),
		UnknownKeys:  unknown,
	}
	for _, key := range report.UnknownKeys {
		console.Info(fmt.Sprintf("Warning: key %s is not a schema field and is ignored.", key))
	}
	for _, id := range report.Unused {
		console.Info(fmt.Sprintf("Warning: option %s is declared but never used.", id))
	}
	console.Info(fmt.Sprintf("Schema is valid: %d placeholder(s), output %s.", report.Placeholders, eng.Spec().Path))
	return report, nil
}
