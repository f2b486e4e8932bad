// Package file provides the filesystem adapters: the schema loader, the
// answers loader and the output sinks.
package file
