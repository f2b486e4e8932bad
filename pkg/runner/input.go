package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxInputSize bounds a single answer, in bytes.
// EnvMaxInputSize overrides it with a positive integer.
var (
	DefaultMaxInputSize = 4096
	EnvMaxInputSize     = "CONFGEN_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge    = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8      = errors.New("input contains invalid UTF-8 sequences")
	ErrControlCharacter = errors.New("input contains a control character")
)

// CheckInput validates one answer before it reaches the collector.
// Accepted text is returned unchanged: the generated file receives exactly
// what the operator typed. Oversized text, invalid UTF-8 and control
// characters other than tab are rejected so the prompter can ask again.
func CheckInput(input string) (string, error) {
	if limit := maxInputSize(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}
	if i := strings.IndexFunc(input, isRejectedControl); i >= 0 {
		r, _ := utf8.DecodeRuneInString(input[i:])
		return "", fmt.Errorf("%w %U at byte %d", ErrControlCharacter, r, i)
	}
	return input, nil
}

func isRejectedControl(r rune) bool {
	return r != '\t' && unicode.IsControl(r)
}

func maxInputSize() int {
	val := os.Getenv(EnvMaxInputSize)
	if val == "" {
		return DefaultMaxInputSize
	}
	size, err := strconv.Atoi(val)
	if err != nil || size <= 0 {
		return DefaultMaxInputSize
	}
	return size
}
