package runner

import (
	"fmt"
	"io"
	"os"
)

// Console renders operator-facing text. Implementations decide styling;
// the runner only decides what is said and in which order.
type Console interface {
	// Info prints a notice line.
	Info(msg string)
	// Value prints one labelled detail of the option being asked for.
	Value(label, value string)
	// Prompt prints the input prompt, without a trailing newline.
	Prompt(label string, def *string)
	// Error prints a failure line.
	Error(msg string)
	// Break separates one option's block from the next.
	Break()
}

// PlainConsole is an uncolored Console.
type PlainConsole struct {
	W io.Writer
}

// NewPlainConsole creates a console writing to w (os.Stdout when nil).
func NewPlainConsole(w io.Writer) *PlainConsole {
	if w == nil {
		w = os.Stdout
	}
	return &PlainConsole{W: w}
}

func (c *PlainConsole) Info(msg string) {
	fmt.Fprintf(c.W, ":: %s\n", msg)
}

func (c *PlainConsole) Value(label, value string) {
	fmt.Fprintf(c.W, "%s: %s\n", label, value)
}

func (c *PlainConsole) Prompt(label string, def *string) {
	if def != nil {
		fmt.Fprintf(c.W, ":: %s [%s]: ", label, *def)
		return
	}
	fmt.Fprintf(c.W, ":: %s: ", label)
}

func (c *PlainConsole) Error(msg string) {
	fmt.Fprintf(c.W, ":: %s\n", msg)
}

func (c *PlainConsole) Break() {
	fmt.Fprintln(c.W)
}

type discardConsole struct{}

func (discardConsole) Info(string) {}
func (discardConsole) Value(string, string) {}
func (discardConsole) Prompt(string, *string) {}
func (discardConsole) Error(string) {}
func (discardConsole) Break() {}
