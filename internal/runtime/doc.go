// Package runtime holds the two stateful-looking halves of a run: the
// Collector, which turns bindings into typed values by prompting, and the
// renderer, which substitutes those values back into the template body.
// Neither performs I/O of its own; prompting goes through the injected Prompter.
package runtime
