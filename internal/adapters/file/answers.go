package file

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

var stringType = reflect.TypeOf("")

// LoadAnswers reads a flat id -> value document (YAML, or JSON by extension)
// used to answer prompts without a terminal. Scalars are converted to their
// text form; a null answer means "use the default"; nested values are rejected.
func LoadAnswers(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	raw, err := decodeDocument(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse answers %s: %w", path, err)
	}

	answers := make(map[string]string, len(raw))
	for id, value := range raw {
		text, err := scalarText(value)
		if err != nil {
			return nil, fmt.Errorf("answer %q: %w", id, err)
		}
		answers[id] = text
	}
	return answers, nil
}

func scalarText(value any) (string, error) {
	switch value.(type) {
	case nil:
		return "", nil
	case map[string]any, []any:
		return "", fmt.Errorf("expected a scalar, got %T", value)
	}

	converted, err := scalarToString(nil, stringType, value)
	if err != nil {
		return "", err
	}
	if s, ok := converted.(string); ok {
		return s, nil
	}
	return fmt.Sprint(value), nil
}
