package runner

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/confgen/pkg/domain"
)

// TextPrompter asks for values one line at a time.
// Each prompt shows the option's details followed by a "Value" prompt that
// echoes the default; an empty line accepts the default.
type TextPrompter struct {
	Reader  *bufio.Reader
	Console Console

	// Renderer formats the description before it is shown (e.g. markdown).
	// Render failures fall back to the raw description.
	Renderer func(string) (string, error)

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewTextPrompter creates a prompter reading from r (os.Stdin when nil).
func NewTextPrompter(r io.Reader, c Console) *TextPrompter {
	if r == nil {
		r = os.Stdin
	}
	if c == nil {
		c = NewPlainConsole(nil)
	}
	return &TextPrompter{
		Reader:  bufio.NewReader(r),
		Console: c,
	}
}

func (p *TextPrompter) initPump() {
	p.startOnce.Do(func() {
		p.inputChan = make(chan inputResult)
		go p.pump()
	})
}

// pump moves blocking reads off the caller's goroutine so Prompt can honour
// context cancellation.
func (p *TextPrompter) pump() {
	for {
		text, err := p.Reader.ReadString('\n')
		if text != "" {
			p.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err == io.EOF {
				close(p.inputChan)
				return
			}
			p.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// Prompt shows decl and reads one line. End of input counts as an empty line.
func (p *TextPrompter) Prompt(ctx context.Context, decl domain.OptionDeclaration) (string, error) {
	p.initPump()

	def := "None"
	if decl.HasDefault() {
		def = decl.DefaultValue()
	}
	p.Console.Value("Name", decl.Name)
	p.Console.Value("Description", p.describe(decl.Description))
	p.Console.Value("Type", string(decl.OptionType()))
	p.Console.Value("Default", def)
	defer p.Console.Break()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			p.Console.Prompt("Value", decl.Default)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-p.inputChan:
			if !ok {
				return "", nil
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := CheckInput(trimLineEnding(res.text))
			if err != nil {
				p.Console.Error(err.Error() + ". Please try again.")
				continue
			}
			return clean, nil
		}
	}
}

func (p *TextPrompter) describe(desc string) string {
	if p.Renderer == nil {
		return desc
	}
	out, err := p.Renderer(desc)
	if err != nil {
		return desc
	}
	return strings.TrimSpace(out)
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
