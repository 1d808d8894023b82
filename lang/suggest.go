package lang

import (
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

// nearestLimit caps how many candidate names a near-name lookup returns.
const nearestLimit = 3

// refPattern matches a sigil-prefixed variable reference in flat text.
var refPattern = regexp.MustCompile(`\*[A-Za-z_][A-Za-z0-9_]*`)

// Unresolved returns the sigil-prefixed references in text that match no
// declared variable, in order of first occurrence. A reference is a literal
// text match, so this also surfaces ordinary code that merely looks like a
// reference (such as a pointer dereference); callers should treat the
// result as a hint, not a verdict.
func (t *Table) Unresolved(text string) []string {
	var refs []string

	seen := make(map[string]struct{})

	for _, ref := range refPattern.FindAllString(text, -1) {
		if _, ok := t.Get(ref); ok {
			continue
		}

		if _, dup := seen[ref]; dup {
			continue
		}

		seen[ref] = struct{}{}

		refs = append(refs, ref)
	}

	return refs
}

// Nearest returns up to limit declared variable names ranked by fuzzy
// similarity to name. The sigil is ignored on both sides. An empty result
// means nothing in the table resembles the name.
func (t *Table) Nearest(name string, limit int) []string {
	name = strings.TrimPrefix(name, string(SigilRef))

	bare := make([]string, 0, t.Len())
	for key := range t.All() {
		bare = append(bare, strings.TrimPrefix(key, string(SigilRef)))
	}

	matches := fuzzy.Find(name, bare)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	near := make([]string, len(matches))
	for i, m := range matches {
		near[i] = m.Str
	}

	return near
}
