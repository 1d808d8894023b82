package lang

import "strings"

// Serialize flattens a token sequence into text.
//
// Tokens are separated by a single space except where the spacing rules
// join them: after a punctuation token marked joint, after the variable
// reference sigil, and after the joint modifier (which itself emits
// nothing). A safe single space everywhere else keeps adjacent identifiers
// from fusing when the output is re-tokenized downstream.
func Serialize(tokens []Token) string {
	var sb strings.Builder

	c := cursor{first: true}
	writeTokens(&sb, tokens, &c)

	return sb.String()
}

// cursor threads the spacing state of the previously emitted token through
// the recursive descent over groups.
type cursor struct {
	first bool // nothing emitted yet
	joint bool // join the next emission to the previous output
}

// emit writes text preceded by the separator the current state calls for.
func (c *cursor) emit(sb *strings.Builder, text string) {
	if !c.first && !c.joint {
		sb.WriteByte(' ')
	}

	sb.WriteString(text)

	c.first = false
	c.joint = false
}

func writeTokens(sb *strings.Builder, tokens []Token, c *cursor) {
	for _, t := range tokens {
		writeToken(sb, t, c)
	}
}

func writeToken(sb *strings.Builder, t Token, c *cursor) {
	switch t.Kind {
	case KindGroup:
		if t.Delim == DelimNone {
			// Invisible grouping: children continue the enclosing stream.
			writeTokens(sb, t.Nodes, c)

			return
		}

		c.emit(sb, t.Delim.Open())

		inner := cursor{first: true}
		writeTokens(sb, t.Nodes, &inner)

		// Closing delimiter sits adjacent to the last child.
		sb.WriteString(t.Delim.Close())

	case KindPunct:
		if t.Text == string(JointModifier) {
			// Emits nothing, joins whatever comes next.
			c.joint = true

			return
		}

		c.emit(sb, t.Text)

		if t.Joint || t.Text == string(SigilRef) {
			c.joint = true
		}

	default:
		c.emit(sb, t.Text)
	}
}
