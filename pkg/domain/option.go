package domain

import (
	"sort"
	"strconv"
)

// OptionDeclaration describes one option a placeholder can reference.
// It uses "mapstructure" tags to match the keys of the schema document.
type OptionDeclaration struct {
	ID          string  `json:"id" yaml:"id" mapstructure:"id"`
	Name        string  `json:"name" yaml:"name" mapstructure:"name"`
	Default     *string `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
	Type        string  `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Description string  `json:"description" yaml:"description" mapstructure:"description"`
}

// HasDefault reports whether the declaration carries a default value.
func (o OptionDeclaration) HasDefault() bool {
	return o.Default != nil
}

// DefaultValue returns the declared default, or "" when none is declared.
func (o OptionDeclaration) DefaultValue() string {
	if o.Default == nil {
		return ""
	}
	return *o.Default
}

// OptionType returns the declared type, falling back to String when absent.
// The result is not validated; see the binder for that.
func (o OptionDeclaration) OptionType() OptionType {
	if o.Type == "" {
		return TypeString
	}
	return OptionType(o.Type)
}

// TemplateSpec is the loaded schema document.
type TemplateSpec struct {
	Template string              `json:"template" yaml:"template" mapstructure:"template"`
	Path     string              `json:"path" yaml:"path" mapstructure:"path"`
	Options  []OptionDeclaration `json:"options" yaml:"options" mapstructure:"options"`
}

// Binding is a placeholder id resolved to its declaration.
type Binding struct {
	ID          string
	Declaration OptionDeclaration
	Type        OptionType
}

// ResolvedValue is the typed value collected for a single option id.
// Value holds a string, an int64 or a bool depending on the option type.
type ResolvedValue struct {
	ID          string
	RawInput    string
	Value       any
	UsedDefault bool
}

// String returns the canonical text form substituted into templates.
func (v ResolvedValue) String() string {
	switch val := v.Value.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return v.RawInput
	}
}

// Resolution maps option ids to their collected values.
type Resolution map[string]ResolvedValue

// IDs returns the resolved ids in sorted order.
func (r Resolution) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
