package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/confgen/pkg/domain"
)

func strPtr(s string) *string { return &s }

func TestTextPrompter_ShowsDetails(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewTextPrompter(strings.NewReader("8080\n"), NewPlainConsole(out))

	val, err := p.Prompt(context.Background(), domain.OptionDeclaration{
		ID: "port", Name: "Port", Description: "Listen port", Type: "Number", Default: strPtr("80"),
	})
	require.NoError(t, err)
	assert.Equal(t, "8080", val)

	output := out.String()
	assert.Contains(t, output, "Name: Port")
	assert.Contains(t, output, "Description: Listen port")
	assert.Contains(t, output, "Type: Number")
	assert.Contains(t, output, "Default: 80")
	assert.Contains(t, output, ":: Value [80]: ")
}

func TestTextPrompter_NoDefault(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewTextPrompter(strings.NewReader("x\n"), NewPlainConsole(out))

	_, err := p.Prompt(context.Background(), domain.OptionDeclaration{ID: "a", Name: "A"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Default: None")
	assert.Contains(t, out.String(), "Type: String")
	assert.Contains(t, out.String(), ":: Value: ")
}

func TestTextPrompter_LineHandling(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"newline stripped only", "  padded  \n", []string{"  padded  "}},
		{"crlf", "value\r\n", []string{"value"}},
		{"empty line", "\n", []string{""}},
		{"sequential", "one\ntwo\n", []string{"one", "two"}},
		{"eof without newline", "last", []string{"last"}},
		{"eof counts as empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTextPrompter(strings.NewReader(tt.input), NewPlainConsole(io.Discard))
			for _, want := range tt.want {
				got, err := p.Prompt(context.Background(), domain.OptionDeclaration{ID: "x", Name: "X"})
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestTextPrompter_RetriesOversizedInput(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "4")

	out := &bytes.Buffer{}
	p := NewTextPrompter(strings.NewReader("toolong\nok\n"), NewPlainConsole(out))

	got, err := p.Prompt(context.Background(), domain.OptionDeclaration{ID: "x", Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Contains(t, out.String(), "Please try again.")
}

func TestTextPrompter_RejectsControlCharacters(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewTextPrompter(strings.NewReader("\x1b\na\x00b\nkept\n"), NewPlainConsole(out))

	got, err := p.Prompt(context.Background(), domain.OptionDeclaration{ID: "x", Name: "X", Default: strPtr("fallback")})
	require.NoError(t, err)
	assert.Equal(t, "kept", got, "a lone escape must not silently become the default")
	assert.Equal(t, 2, strings.Count(out.String(), "control character"))
	assert.Equal(t, 3, strings.Count(out.String(), ":: Value [fallback]: "))
}

func TestTextPrompter_Renderer(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewTextPrompter(strings.NewReader("\n"), NewPlainConsole(out))
	p.Renderer = func(s string) (string, error) {
		return "Rendered: " + s + "\n", nil
	}

	_, err := p.Prompt(context.Background(), domain.OptionDeclaration{ID: "x", Name: "X", Description: "**bold**"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Description: Rendered: **bold**\n")

	out.Reset()
	p.Renderer = func(string) (string, error) { return "", errors.New("boom") }
	_, err = p.Prompt(context.Background(), domain.OptionDeclaration{ID: "y", Name: "Y", Description: "plain"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Description: plain")
}

func TestTextPrompter_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	p := NewTextPrompter(pr, NewPlainConsole(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := p.Prompt(ctx, domain.OptionDeclaration{ID: "x", Name: "X"})
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Prompt did not return after cancel")
	}
}
