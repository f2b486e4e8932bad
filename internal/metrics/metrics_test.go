package metrics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/confgen/pkg/domain"
)

func binding(id string, typ domain.OptionType) domain.Binding {
	return domain.Binding{ID: id, Type: typ, Declaration: domain.OptionDeclaration{ID: id}}
}

func TestRecorder_HooksAndTextfile(t *testing.T) {
	rec := NewRecorder()
	hooks := rec.Hooks()
	ctx := context.Background()

	port := binding("port", domain.TypeNumber)
	hooks.OnPrompt(ctx, domain.NewOptionEvent(domain.EventPrompt, port))
	done := domain.NewOptionEvent(domain.EventResolve, port)
	done.UsedDefault = true
	hooks.OnResolve(ctx, done)

	host := binding("host", domain.TypeString)
	hooks.OnPrompt(ctx, domain.NewOptionEvent(domain.EventPrompt, host))
	hooks.OnResolve(ctx, domain.NewOptionEvent(domain.EventResolve, host))

	gzip := binding("gzip", domain.TypeBoolean)
	hooks.OnPrompt(ctx, domain.NewOptionEvent(domain.EventPrompt, gzip))
	failed := domain.NewOptionEvent(domain.EventFailure, gzip)
	failed.Err = &domain.OptionError{ID: "gzip", Err: &domain.NotABooleanError{Raw: "maybe"}}
	hooks.OnFailure(ctx, failed)

	rec.ObserveRun(250*time.Millisecond, failed.Err)

	path := filepath.Join(t.TempDir(), "confgen.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	for _, line := range []string{
		`confgen_prompts_total{type="Number"} 1`,
		`confgen_prompts_total{type="String"} 1`,
		`confgen_prompts_total{type="Boolean"} 1`,
		`confgen_options_resolved_total{source="default",type="Number"} 1`,
		`confgen_options_resolved_total{source="input",type="String"} 1`,
		`confgen_option_failures_total{reason="coercion"} 1`,
		`confgen_prompt_duration_seconds_count{type="Boolean"} 1`,
		`confgen_last_run_duration_seconds 0.25`,
		`confgen_last_run_success 0`,
	} {
		assert.Contains(t, text, line)
	}
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{&domain.MissingRequiredValueError{ID: "x"}, "missing_value"},
		{&domain.OptionError{ID: "x", Err: &domain.NotANumberError{Raw: "a"}}, "coercion"},
		{fmt.Errorf("prompt: %w", context.Canceled), "canceled"},
		{errors.New("tty closed"), "prompt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FailureReason(tt.err))
	}
}

func TestRecorder_SuccessfulRun(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveRun(time.Second, nil)

	path := filepath.Join(t.TempDir(), "run.prom")
	require.NoError(t, rec.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "confgen_last_run_success 1")
}
