package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/confgen/pkg/domain"
)

// Type defines the contract for option value coercion.
type Type interface {
	// Name returns the declared name of the type (e.g., "String", "Number").
	Name() string
	// Coerce converts raw operator text into a typed value.
	Coerce(raw string) (any, error)
}

// --- Built-in Type Implementations ---

// StringType passes text through unchanged.
type StringType struct{}

func (t *StringType) Name() string { return string(domain.TypeString) }

func (t *StringType) Coerce(raw string) (any, error) {
	return raw, nil
}

// NumberType parses base-10 signed integers.
type NumberType struct{}

func (t *NumberType) Name() string { return string(domain.TypeNumber) }

func (t *NumberType) Coerce(raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &domain.NotANumberError{Raw: raw}
	}
	return n, nil
}

// TruthyWords and FalsyWords are matched as substrings, truthy first.
var (
	TruthyWords = []string{"yes", "true", "y", "yea", "yeah", "yep", "yup", "1", "on"}
	FalsyWords  = []string{"no", "false", "n", "nope", "0", "off"}
)

// BooleanType matches text against the boolean vocabularies.
type BooleanType struct{}

func (t *BooleanType) Name() string { return string(domain.TypeBoolean) }

func (t *BooleanType) Coerce(raw string) (any, error) {
	lowered := strings.ToLower(raw)
	switch {
	case containsAny(lowered, TruthyWords):
		return true, nil
	case containsAny(lowered, FalsyWords):
		return false, nil
	default:
		return nil, &domain.NotABooleanError{Raw: raw}
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// --- Factory Functions ---

// String creates a string type.
func String() Type { return &StringType{} }

// Number creates an integer type.
func Number() Type { return &NumberType{} }

// Boolean creates a boolean type.
func Boolean() Type { return &BooleanType{} }

// ParseType converts a declared type name to a Type. Names match exactly;
// an empty name means String.
func ParseType(name string) (Type, error) {
	switch domain.OptionType(name) {
	case "", domain.TypeString:
		return String(), nil
	case domain.TypeNumber:
		return Number(), nil
	case domain.TypeBoolean:
		return Boolean(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", name)
	}
}

// Supported reports whether name is a declarable type.
func Supported(name string) bool {
	_, err := ParseType(name)
	return err == nil
}

// Coerce converts raw into the typed value for kind.
func Coerce(raw string, kind domain.OptionType) (any, error) {
	t, err := ParseType(string(kind))
	if err != nil {
		return nil, err
	}
	return t.Coerce(raw)
}
