package lang

import (
	"iter"
	"slices"
	"strings"
)

// Table is the ordered variable table built while parsing declarations.
//
// Keys carry the reference sigil (a variable declared as "let &foo" is
// stored under "*foo") so substitution sites are found by exact text match.
// Entries preserve declaration order; the duplication engine consumes them
// through [Table.Descending] instead, an explicit sort that guarantees a
// longer name is always matched before any of its prefixes.
//
// A Table is mutable only while declarations are being parsed. Every entry's
// variant list is fully resolved before it is stored and never modified
// afterward.
type Table struct {
	entries []entry
}

type entry struct {
	name     string
	variants []string
}

// Set inserts a variable with its resolved variants, overwriting the
// variants of an existing entry with the same name (last declaration wins).
func (t *Table) Set(name string, variants []string) {
	for i := range t.entries {
		if t.entries[i].name == name {
			t.entries[i].variants = variants

			return
		}
	}

	t.entries = append(t.entries, entry{name: name, variants: variants})
}

// Get returns the variant list for name, if declared.
func (t *Table) Get(name string) ([]string, bool) {
	for i := range t.entries {
		if t.entries[i].name == name {
			return t.entries[i].variants, true
		}
	}

	return nil, false
}

// Len returns the number of declared variables.
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns all variable names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i := range t.entries {
		names[i] = t.entries[i].name
	}

	return names
}

// Descending returns all variable names sorted lexicographically in
// descending order. Processing names in this order makes substitution
// consume "*foobar" before "*foo" can shadow it at the same site.
func (t *Table) Descending() []string {
	names := t.Names()

	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(b, a)
	})

	return names
}

// All returns an iterator over name/variants pairs in declaration order.
func (t *Table) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for i := range t.entries {
			if !yield(t.entries[i].name, t.entries[i].variants) {
				return
			}
		}
	}
}
