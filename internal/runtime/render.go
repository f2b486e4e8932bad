package runtime

import (
	"strings"

	"github.com/aretw0/confgen/pkg/domain"
)

// Render substitutes every placeholder whose id is in resolved with the
// value's canonical text. Ids are applied in sorted order, so a value that
// spells the placeholder of a later id is substituted again.
// Placeholders for ids missing from resolved are left as-is.
func Render(body string, resolved domain.Resolution) string {
	out := body
	for _, id := range resolved.IDs() {
		out = strings.ReplaceAll(out, domain.Placeholder(id), resolved[id].String())
	}
	return out
}

// Unresolved returns the distinct ids among refs that resolved does not
// cover, in first-occurrence order. refs are the placeholder ids of the
// original body, as reported by the binder.
func Unresolved(refs []string, resolved domain.Resolution) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, id := range refs {
		if _, ok := resolved[id]; ok || seen[id] {
			continue
		}
		seen[id] = true
		missing = append(missing, id)
	}
	return missing
}
