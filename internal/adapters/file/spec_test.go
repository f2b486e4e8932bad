package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/confgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `template: |
  server {
    listen ${{port}};
    server_name ${{host}};
  }
path: nginx.conf
options:
  - name: Port
    id: port
    default: 8080
    type: Number
    description: Port to listen on
  - name: Host
    id: host
    description: Public host name
  - name: Gzip
    id: gzip
    default: true
    type: Boolean
    description: Enable gzip
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSpecLoader_YAML(t *testing.T) {
	path := writeFile(t, ".confgen.yaml", sampleYAML)

	spec, err := NewSpecLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "nginx.conf", spec.Path)
	assert.Contains(t, spec.Template, "listen ${{port}};")
	require.Len(t, spec.Options, 3)

	port := spec.Options[0]
	assert.Equal(t, "port", port.ID)
	assert.Equal(t, "Port", port.Name)
	assert.Equal(t, "Number", port.Type)
	require.True(t, port.HasDefault())
	assert.Equal(t, "8080", port.DefaultValue(), "unquoted numbers become text")

	host := spec.Options[1]
	assert.False(t, host.HasDefault())
	assert.Equal(t, "", host.Type)

	assert.Equal(t, "true", spec.Options[2].DefaultValue())
}

func TestSpecLoader_JSON(t *testing.T) {
	path := writeFile(t, "schema.json", `{
  "template": "Hello ${{who}}!",
  "path": "out.txt",
  "options": [
    {"id": "who", "name": "Who", "description": "x", "default": 3}
  ]
}`)

	spec, err := NewSpecLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello ${{who}}!", spec.Template)
	assert.Equal(t, "3", spec.Options[0].DefaultValue())
}

func TestSpecLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"malformed", "template: [unclosed", "failed to parse YAML"},
		{"empty", "", "document is empty"},
		{"missing path", "template: x\noptions: []\n", `missing field "path"`},
		{"option without id", "template: x\npath: y\noptions:\n  - name: A\n    description: d\n", `options[0]: missing field "id"`},
		{"option not a mapping", "template: x\npath: y\noptions:\n  - just-a-string\n", "options[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "spec.yaml", tt.content)

			_, err := NewSpecLoader(path).Load(context.Background())
			require.Error(t, err)

			var loadErr *domain.SchemaLoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Path)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSpecLoader_IgnoresUnknownKeys(t *testing.T) {
	content := "version: 1\n" + sampleYAML + "    example: World\n"
	path := writeFile(t, ".confgen.yaml", content)

	spec, err := NewSpecLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "nginx.conf", spec.Path)
	require.Len(t, spec.Options, 3)
	assert.Equal(t, "Enable gzip", spec.Options[2].Description)

	unknown, err := UnknownKeys(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"options[2].example", "version"}, unknown)
}

func TestUnknownKeys_None(t *testing.T) {
	unknown, err := UnknownKeys(writeFile(t, "spec.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Empty(t, unknown)

	_, err = UnknownKeys(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, domain.ErrSchemaLoad)
}

func TestSpecLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := NewSpecLoader(path).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSchemaLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewSpecLoader_DefaultPath(t *testing.T) {
	assert.Equal(t, ".confgen.yaml", NewSpecLoader("").Path)
}

func TestLoadAnswers(t *testing.T) {
	path := writeFile(t, "answers.yaml", "host: example.org\nport: 443\ntls: yes\nname: ~\n")

	answers, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"host": "example.org",
		"port": "443",
		"tls":  "yes",
		"name": "",
	}, answers)
}

func TestLoadAnswers_RejectsNested(t *testing.T) {
	path := writeFile(t, "answers.json", `{"host": {"name": "x"}}`)

	_, err := LoadAnswers(path)
	assert.ErrorContains(t, err, `answer "host"`)
}
