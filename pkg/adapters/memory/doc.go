// Package memory provides in-memory adapters for embedding and tests.
package memory
