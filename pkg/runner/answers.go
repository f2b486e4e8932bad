package runner

import (
	"context"

	"github.com/aretw0/confgen/pkg/domain"
)

// AnswersPrompter answers from a prepared id → text map.
// Ids without an answer are delegated to Fallback, or answered empty so the
// declared default applies.
type AnswersPrompter struct {
	Answers  map[string]string
	Fallback Prompter
}

// NewAnswersPrompter creates a non-interactive prompter over answers.
func NewAnswersPrompter(answers map[string]string, fallback Prompter) *AnswersPrompter {
	return &AnswersPrompter{Answers: answers, Fallback: fallback}
}

func (p *AnswersPrompter) Prompt(ctx context.Context, decl domain.OptionDeclaration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if v, ok := p.Answers[decl.ID]; ok {
		return v, nil
	}
	if p.Fallback != nil {
		return p.Fallback.Prompt(ctx, decl)
	}
	return "", nil
}

// DefaultsPrompter accepts every default without asking.
// Options without a default fail as missing values.
type DefaultsPrompter struct{}

func (DefaultsPrompter) Prompt(ctx context.Context, _ domain.OptionDeclaration) (string, error) {
	return "", ctx.Err()
}
