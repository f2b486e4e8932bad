package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/aretw0/confgen/internal/adapters/file"
	"github.com/aretw0/confgen/internal/presentation/tui"
	"github.com/aretw0/confgen/pkg/runner"
)

// Prompt styles accepted by --prompt.
const (
	PromptAuto   = "auto"
	PromptText   = "text"
	PromptSurvey = "survey"
)

// interactive reports whether the run will ask the operator anything.
func (o RunOptions) interactive() bool {
	return !o.Defaults && o.AnswersPath == ""
}

// selectPrompter picks how option values are obtained.
// --answers and --defaults take precedence over the prompt style.
func selectPrompter(opts RunOptions, in io.Reader, console runner.Console) (runner.Prompter, error) {
	if opts.AnswersPath != "" {
		answers, err := file.LoadAnswers(opts.AnswersPath)
		if err != nil {
			return nil, err
		}
		return runner.NewAnswersPrompter(answers, nil), nil
	}
	if opts.Defaults {
		return runner.DefaultsPrompter{}, nil
	}

	style := opts.Prompt
	if style == "" || style == PromptAuto {
		style = PromptText
		if isTerminal(in) {
			style = PromptSurvey
		}
	}

	switch style {
	case PromptText:
		p := runner.NewTextPrompter(in, console)
		if isTerminal(in) {
			p.Renderer = tui.NewRenderer(terminalWidth(in))
		}
		return p, nil
	case PromptSurvey:
		return runner.NewSurveyPrompter(surveyOptions(opts, in)...), nil
	default:
		return nil, fmt.Errorf("unknown prompt style %q (want auto, text or survey)", opts.Prompt)
	}
}

// surveyOptions keeps survey's prompts off stdout when stdout carries the
// rendered configuration.
func surveyOptions(opts RunOptions, in io.Reader) []survey.AskOpt {
	if !opts.Stdout {
		return nil
	}
	stdin, ok := in.(*os.File)
	if !ok {
		stdin = os.Stdin
	}
	return []survey.AskOpt{survey.WithStdio(stdin, os.Stderr, os.Stderr)}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(r io.Reader) int {
	f, ok := r.(*os.File)
	if !ok {
		return 0
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
