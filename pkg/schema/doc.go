// Package schema provides the typed value system behind option declarations.
//
// It defines the three option kinds (String, Number, Boolean) and coerces raw
// operator text into typed values:
//
//	v, err := schema.Coerce("42", domain.TypeNumber)   // int64(42)
//	v, err = schema.Coerce("YES", domain.TypeBoolean)  // true
//
// Types can also be resolved from their declared names:
//
//	t, err := schema.ParseType("Boolean")
//	v, err := t.Coerce("nope")                         // false
//
// Boolean coercion matches vocabulary words as substrings of the lowercased
// input, truthy words first. "onion" therefore reads as true because it
// contains "on". This is kept for compatibility with existing schemas.
//
// Lint checks a whole TemplateSpec and reports every problem at once as an
// AggregateError, which the validate command prints.
//
// This package has no dependencies beyond the Go standard library and the
// domain package.
package schema
