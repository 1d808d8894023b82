// Package lang implements the ditto template language: a small notation for
// stamping out near-identical copies of a block of source text.
//
// # Notation
//
// A template begins with zero or more variable declarations followed by a
// body. Each declaration binds a name to an ordered list of text variants:
//
//	let &var = [1, 2, 3];
//	res += *var;
//
// The body is repeated once per variant, with every occurrence of *var
// replaced by that repetition's variant:
//
//	res += 1; res += 2; res += 3;
//
// Value sources take one of three forms:
//
//   - A bracketed list [v1, v2, ...] of comma-separated token runs. A run
//     consisting of the keyword NONE stores the empty string, so that slot
//     emits nothing.
//   - A single delimited group, such as a brace block. The group body is
//     stored as the sole variant, reused unchanged for every repetition.
//   - An integer range A..B (end exclusive) or A..=B (end inclusive),
//     expanded eagerly to one variant per integer.
//
// Declarations may reference variables declared earlier; the reference is
// substituted immediately, at declaration time. References to names declared
// later (or to the variable itself) are never substituted and pass through
// to the output verbatim.
//
// Variables referenced in the body are tiled together: the body repeats
// max(len) times across all referenced variables, and a shorter list repeats
// its final variant for the remaining repetitions.
//
// The joint modifier ~ suppresses the single space that serialization would
// otherwise insert between two adjacent tokens, which lets a substitution
// fuse with neighboring text (for example constructing one identifier from
// a fixed prefix and a variable suffix).
//
// # Usage
//
//	out, err := lang.ExpandString(ctx, src)
//
// Or, when the token sequence is produced elsewhere:
//
//	tmpl, err := lang.Parse(ctx, tokens)
//	out := tmpl.Expand()
//
// Expansion is a pure function of its input: it performs no I/O, shares no
// state between invocations, and is safe to run concurrently.
package lang
