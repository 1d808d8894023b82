package lang

import (
	"slices"
	"strings"
)

// chunk is one span of the decomposed template: a fixed text prefix plus
// the variant list substituted immediately after it. A nil variant list
// means the prefix is followed by no substitution.
type chunk struct {
	prefix   string
	variants []string
}

// Duplicate expands template against the frozen variable table.
//
// The template is decomposed into chunks at every occurrence of a declared
// variable name, then reassembled once per repetition with each name's
// variant for that repetition inserted at its chunk boundary. The number of
// repetitions is the longest variant list among the variables that actually
// occur; shorter lists repeat their final variant for the remainder. A
// template that references no variables is returned verbatim as its single
// repetition.
//
// Duplicate is total: given any table it produces output for any input.
func Duplicate(template string, t *Table) string {
	chunks := split(template, t)

	times := 1
	for i := range chunks {
		times = max(times, len(chunks[i].variants))
	}

	var sb strings.Builder

	for i := range times {
		for _, c := range chunks {
			sb.WriteString(c.prefix)

			if n := len(c.variants); n > 0 {
				sb.WriteString(c.variants[min(i, n-1)])
			}
		}
	}

	return sb.String()
}

// split decomposes template into chunks, one variable at a time in
// descending name order so a longer name is consumed before any shorter
// name that prefixes it. Chunks are scanned back to front within each pass
// so the chunks a split produces are not revisited for the same name.
func split(template string, t *Table) []chunk {
	chunks := []chunk{{prefix: template}}

	for _, name := range t.Descending() {
		variants, _ := t.Get(name)

		for i := len(chunks) - 1; i >= 0; i-- {
			parts := strings.Split(chunks[i].prefix, name)
			if len(parts) == 1 {
				continue
			}

			// Each match becomes a boundary carrying this name's variants.
			// The text after the final match keeps the substitution the
			// original chunk was carrying.
			repl := make([]chunk, 0, len(parts))
			for _, p := range parts[:len(parts)-1] {
				repl = append(repl, chunk{prefix: p, variants: variants})
			}

			repl = append(repl, chunk{
				prefix:   parts[len(parts)-1],
				variants: chunks[i].variants,
			})

			chunks = slices.Replace(chunks, i, i+1, repl...)
		}
	}

	return chunks
}
