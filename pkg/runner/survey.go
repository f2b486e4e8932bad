package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/aretw0/confgen/pkg/domain"
)

// ErrAborted is returned when the operator interrupts a survey prompt.
var ErrAborted = errors.New("prompt aborted")

// askFunc matches survey.AskOne so tests can stand in for the terminal.
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// SurveyPrompter asks for each option with an interactive survey input.
// The default is shown in the message rather than pre-filled, so an empty
// answer still reaches the collector as empty and the default is applied there.
type SurveyPrompter struct {
	ask  askFunc
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a prompter bound to the process terminal.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{ask: survey.AskOne, opts: opts}
}

// Prompt asks for decl's value. Description is available through '?'.
func (p *SurveyPrompter) Prompt(ctx context.Context, decl domain.OptionDeclaration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prompt := &survey.Input{
		Message: surveyMessage(decl),
		Help:    decl.Description,
	}

	var out string
	if err := p.ask(prompt, &out, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return CheckInput(out)
}

func surveyMessage(decl domain.OptionDeclaration) string {
	msg := fmt.Sprintf("%s (%s)", decl.Name, decl.OptionType())
	if decl.HasDefault() {
		msg += fmt.Sprintf(" [%s]", decl.DefaultValue())
	}
	return msg + ":"
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
