package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/confgen/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// SpecLoader implements ports.SpecLoader by reading a schema document from disk.
// Documents ending in .json are parsed as JSON, anything else as YAML.
type SpecLoader struct {
	Path string
}

// NewSpecLoader creates a loader for path.
// If path is empty, it defaults to ".confgen.yaml" in the working directory.
func NewSpecLoader(path string) *SpecLoader {
	if path == "" {
		path = domain.DefaultSpecFile
	}
	return &SpecLoader{Path: path}
}

// Load reads and decodes the schema document.
func (l *SpecLoader) Load(ctx context.Context) (*domain.TemplateSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, &domain.SchemaLoadError{Path: l.Path, Err: err}
	}

	spec, err := ParseSpec(data, filepath.Ext(l.Path))
	if err != nil {
		return nil, &domain.SchemaLoadError{Path: l.Path, Err: err}
	}
	return spec, nil
}

// ParseSpec decodes a schema document. ext selects the syntax (".json" or YAML otherwise).
// The raw document is decoded into a generic map first and then mapped onto the
// TemplateSpec, so both syntaxes share one set of field rules. Unknown keys are
// ignored; UnknownKeys reports them.
func ParseSpec(data []byte, ext string) (*domain.TemplateSpec, error) {
	spec, _, err := parseSpec(data, ext)
	return spec, err
}

// UnknownKeys loads the schema at path and lists the keys that no field
// consumes, e.g. "version" or "options[0].example", sorted.
func UnknownKeys(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.SchemaLoadError{Path: path, Err: err}
	}
	_, unused, err := parseSpec(data, filepath.Ext(path))
	if err != nil {
		return nil, &domain.SchemaLoadError{Path: path, Err: err}
	}
	return unused, nil
}

func parseSpec(data []byte, ext string) (*domain.TemplateSpec, []string, error) {
	raw, err := decodeDocument(data, ext)
	if err != nil {
		return nil, nil, err
	}

	var (
		spec domain.TemplateSpec
		md   mapstructure.Metadata
	)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &spec,
		Metadata:   &md,
		DecodeHook: scalarToString,
		TagName:    "mapstructure",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, nil, fmt.Errorf("failed to decode schema: %w", err)
	}

	if err := requireFields(raw); err != nil {
		return nil, nil, err
	}
	sort.Strings(md.Unused)
	return &spec, md.Unused, nil
}

func decodeDocument(data []byte, ext string) (map[string]any, error) {
	var raw map[string]any
	if strings.EqualFold(ext, ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	if raw == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return raw, nil
}

func requireFields(raw map[string]any) error {
	for _, key := range []string{"template", "path", "options"} {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("missing field %q", key)
		}
	}

	options, _ := raw["options"].([]any)
	for i, entry := range options {
		fields, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("options[%d]: expected a mapping", i)
		}
		for _, key := range []string{"name", "id", "description"} {
			if _, ok := fields[key]; !ok {
				return fmt.Errorf("options[%d]: missing field %q", i, key)
			}
		}
	}
	return nil
}

// scalarToString lets unquoted scalars such as `default: 8080` or
// `default: true` fill string fields with their canonical text.
func scalarToString(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch v := data.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return data, nil
	}
}
