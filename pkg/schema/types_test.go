package schema

import (
	"errors"
	"testing"

	"github.com/aretw0/confgen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_String(t *testing.T) {
	for _, raw := range []string{"", "hello", "  padded  ", "${{nested}}"} {
		v, err := Coerce(raw, domain.TypeString)
		require.NoError(t, err)
		assert.Equal(t, raw, v)
	}
}

func TestCoerce_Number(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"-7", -7, false},
		{"+3", 3, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"", 0, true},
		{"4.2", 0, true},
		{"42px", 0, true},
		{" 42", 0, true},
		{"0x1F", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Coerce(tt.raw, domain.TypeNumber)
			if tt.wantErr {
				var nan *domain.NotANumberError
				require.True(t, errors.As(err, &nan), "expected NotANumberError, got %v", err)
				assert.Equal(t, tt.raw, nan.Raw)
				assert.True(t, errors.Is(err, domain.ErrCoercion))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestCoerce_Boolean(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"YES", true, false},
		{"true", true, false},
		{"Y", true, false},
		{"yup", true, false},
		{"1", true, false},
		{"On", true, false},
		{"No", false, false},
		{"FALSE", false, false},
		{"nope", false, false},
		{"0", false, false},
		{"off", false, false},
		{"abc", false, true},
		{"xz", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Coerce(tt.raw, domain.TypeBoolean)
			if tt.wantErr {
				var nab *domain.NotABooleanError
				require.True(t, errors.As(err, &nab), "expected NotABooleanError, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

// Substring matching is a known sharp edge: words only need to appear
// somewhere in the input, and truthy words win over falsy ones.
func TestCoerce_BooleanSubstringQuirk(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"onion", true},    // contains "on"
		{"nothing", false}, // contains "no" and "n", no truthy word
		{"not yet", true},  // contains "y"
		{"10", true},       // "1" is checked before "0"
		{"bunny", true},    // contains "y"
		{"maybe", true},    // contains "y"
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := Coerce(tt.raw, domain.TypeBoolean)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseType(t *testing.T) {
	for name, want := range map[string]string{
		"":        "String",
		"String":  "String",
		"Number":  "Number",
		"Boolean": "Boolean",
	} {
		typ, err := ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, want, typ.Name())
	}

	for _, bad := range []string{"string", "Integer", "bool", "[String]"} {
		_, err := ParseType(bad)
		assert.Error(t, err, "type %q should be rejected", bad)
		assert.False(t, Supported(bad))
	}
}
