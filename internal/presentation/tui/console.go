package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

const (
	colorNotice = "4" // blue
	colorPrompt = "3" // yellow
	colorValue  = "2" // green
	colorError  = "1" // red
)

// Console prints notices, option details and prompts with ANSI colors.
// Colors degrade to plain text when w is not a terminal.
type Console struct {
	out *termenv.Output
}

// NewConsole creates a console writing to w (os.Stdout when nil).
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{out: termenv.NewOutput(w)}
}

func (c *Console) marker(color string) termenv.Style {
	return c.out.String("::").Foreground(c.out.Color(color)).Bold()
}

func (c *Console) Info(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.marker(colorNotice), msg)
}

func (c *Console) Value(label, value string) {
	fmt.Fprintf(c.out, "%s: %s\n", c.out.String(label).Bold(), value)
}

func (c *Console) Prompt(label string, def *string) {
	if def != nil {
		brackets := c.out.String("[" + *def + "]").Foreground(c.out.Color(colorValue))
		fmt.Fprintf(c.out, "%s %s %s: ", c.marker(colorPrompt), label, brackets)
		return
	}
	fmt.Fprintf(c.out, "%s %s: ", c.marker(colorPrompt), label)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.marker(colorError), c.out.String(msg).Foreground(c.out.Color(colorError)))
}

func (c *Console) Break() {
	fmt.Fprintln(c.out)
}

// PrintError writes a single red ":: msg" line to w.
func PrintError(w io.Writer, msg string) {
	NewConsole(w).Error(msg)
}
