package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrSchemaLoad           = errors.New("schema load failed")
	ErrUnknownOption        = errors.New("unknown option")
	ErrInvalidOptionType    = errors.New("invalid option type")
	ErrDuplicateOption      = errors.New("duplicate option")
	ErrMissingRequiredValue = errors.New("missing required value")
	ErrCoercion             = errors.New("coercion failed")
	ErrUnresolved           = errors.New("unresolved placeholder")
	ErrOutputWrite          = errors.New("output write failed")
)

// SchemaLoadError reports an unreadable or malformed schema document.
type SchemaLoadError struct {
	Path string
	Err  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("Error parsing config file %s: %v", e.Path, e.Err)
}

func (e *SchemaLoadError) Unwrap() []error { return []error{ErrSchemaLoad, e.Err} }

// UnknownOptionError reports a placeholder id with no declaration.
type UnknownOptionError struct {
	ID string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("Option %s not found in configuration file.", e.ID)
}

func (e *UnknownOptionError) Is(target error) bool { return target == ErrUnknownOption }

// InvalidOptionTypeError reports a declaration whose type is not supported.
type InvalidOptionTypeError struct {
	ID   string
	Type string
}

func (e *InvalidOptionTypeError) Error() string {
	return fmt.Sprintf("Option %s has invalid type %s.", e.ID, e.Type)
}

func (e *InvalidOptionTypeError) Is(target error) bool { return target == ErrInvalidOptionType }

// DuplicateOptionError reports two declarations sharing an id.
type DuplicateOptionError struct {
	ID string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("Option %s is declared more than once.", e.ID)
}

func (e *DuplicateOptionError) Is(target error) bool { return target == ErrDuplicateOption }

// MissingRequiredValueError reports empty input for an option without a default.
type MissingRequiredValueError struct {
	ID   string
	Name string
}

func (e *MissingRequiredValueError) Error() string {
	name := e.Name
	if name == "" {
		name = e.ID
	}
	return fmt.Sprintf("Option %s does not have a default, you must enter a value for it.", name)
}

func (e *MissingRequiredValueError) Is(target error) bool { return target == ErrMissingRequiredValue }

// NotANumberError reports text that is not a base-10 integer.
type NotANumberError struct {
	Raw string
}

func (e *NotANumberError) Error() string {
	return fmt.Sprintf("%q is not a number", e.Raw)
}

func (e *NotANumberError) Is(target error) bool { return target == ErrCoercion }

// NotABooleanError reports text matching neither boolean vocabulary.
type NotABooleanError struct {
	Raw string
}

func (e *NotABooleanError) Error() string {
	return fmt.Sprintf("%q is not a boolean", e.Raw)
}

func (e *NotABooleanError) Is(target error) bool { return target == ErrCoercion }

// OptionError tags a failure with the option id it belongs to.
type OptionError struct {
	ID  string
	Err error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s: %v", e.ID, e.Err)
}

func (e *OptionError) Unwrap() error { return e.Err }

// UnresolvedError reports placeholders left in a rendered body.
type UnresolvedError struct {
	IDs []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("template still references unresolved options: %v", e.IDs)
}

func (e *UnresolvedError) Is(target error) bool { return target == ErrUnresolved }

// OutputWriteError reports a failure writing the rendered file.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() []error { return []error{ErrOutputWrite, e.Err} }
