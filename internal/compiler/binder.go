package compiler

import (
	"regexp"

	"github.com/aretw0/confgen/pkg/domain"
	"github.com/aretw0/confgen/pkg/schema"
)

// placeholderPattern captures the id between "${{" and the nearest "}}" on one line.
// An id that itself contains "}}" is not supported and yields a garbled reference.
const placeholderPattern = `\$\{\{(.+?)\}\}`

// Binder resolves the placeholders of a template body to option declarations.
type Binder struct {
	pattern *regexp.Regexp
}

// NewBinder creates a binder with its placeholder pattern compiled.
func NewBinder() *Binder {
	return &Binder{pattern: regexp.MustCompile(placeholderPattern)}
}

// References returns every placeholder id in body, in order, duplicates included.
func (b *Binder) References(body string) []string {
	matches := b.pattern.FindAllStringSubmatch(body, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

// Bind resolves each distinct placeholder id in body to its declaration,
// preserving first-occurrence order. It fails on duplicate declarations,
// undeclared ids and unsupported types. Declarations never referenced are ignored.
func (b *Binder) Bind(body string, options []domain.OptionDeclaration) ([]domain.Binding, error) {
	index, err := indexOptions(options)
	if err != nil {
		return nil, err
	}

	refs := b.References(body)
	seen := make(map[string]bool, len(refs))
	bindings := make([]domain.Binding, 0, len(refs))

	for _, id := range refs {
		if seen[id] {
			continue
		}
		seen[id] = true

		decl, ok := index[id]
		if !ok {
			return nil, &domain.UnknownOptionError{ID: id}
		}
		if !schema.Supported(decl.Type) {
			return nil, &domain.InvalidOptionTypeError{ID: id, Type: decl.Type}
		}

		bindings = append(bindings, domain.Binding{
			ID:          id,
			Declaration: decl,
			Type:        decl.OptionType(),
		})
	}

	return bindings, nil
}

// Unused returns the ids of declarations that body never references, in declaration order.
func (b *Binder) Unused(body string, options []domain.OptionDeclaration) []string {
	referenced := make(map[string]bool)
	for _, id := range b.References(body) {
		referenced[id] = true
	}

	var unused []string
	for _, opt := range options {
		if !referenced[opt.ID] {
			unused = append(unused, opt.ID)
		}
	}
	return unused
}

func indexOptions(options []domain.OptionDeclaration) (map[string]domain.OptionDeclaration, error) {
	index := make(map[string]domain.OptionDeclaration, len(options))
	for _, opt := range options {
		if _, exists := index[opt.ID]; exists {
			return nil, &domain.DuplicateOptionError{ID: opt.ID}
		}
		index[opt.ID] = opt
	}
	return index, nil
}
