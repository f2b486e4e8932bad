// Package compiler turns a template body and its option declarations into
// the ordered bindings the collector prompts for.
//
// Placeholders are found with a single-capture pattern rather than a parser:
// the syntax is flat, so "${{id}}" is the only construct recognised.
package compiler
