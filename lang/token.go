package lang

import (
	"fmt"
	"io"
	"strings"
)

// Sentinel vocabulary recognized inside templates.
const (
	// KeywordLet introduces a variable declaration.
	KeywordLet = "let"
	// KeywordNone marks a list slot that substitutes the empty string.
	KeywordNone = "NONE"
	// SigilDecl precedes a variable name at its declaration site.
	SigilDecl = '&'
	// SigilRef precedes a variable name at its reference sites.
	SigilRef = '*'
	// JointModifier suppresses the space before the next serialized token.
	JointModifier = '~'
)

// Kind discriminates the variants of [Token].
type Kind int

const (
	// KindIdent is an identifier or keyword.
	KindIdent Kind = iota

	// KindLiteral is a numeric or quoted constant, stored verbatim.
	KindLiteral

	// KindPunct is a single punctuation rune with a spacing hint.
	KindPunct

	// KindGroup is a delimited sequence of nested tokens.
	KindGroup
)

// String returns a string representation of the token kind.
func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "Ident"
	case KindLiteral:
		return "Literal"
	case KindPunct:
		return "Punct"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Delim identifies the delimiter pair enclosing a group.
type Delim int

const (
	// DelimNone groups tokens without visible delimiters.
	DelimNone Delim = iota

	// DelimParen is a parenthesized group.
	DelimParen

	// DelimBrace is a brace-delimited group.
	DelimBrace

	// DelimBracket is a bracket-delimited group.
	DelimBracket
)

// Open returns the opening delimiter, or the empty string for [DelimNone].
func (d Delim) Open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBrace:
		return "{"
	case DelimBracket:
		return "["
	default:
		return ""
	}
}

// Close returns the closing delimiter, or the empty string for [DelimNone].
func (d Delim) Close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBrace:
		return "}"
	case DelimBracket:
		return "]"
	default:
		return ""
	}
}

// Position locates a token within its source text.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns the position formatted as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one atom of template input. Exactly one interpretation applies
// based on Kind: Text holds identifier, literal, or punctuation text; Joint
// applies only to punctuation; Delim and Nodes apply only to groups.
//
// Token sequences are consumed exactly once and never mutated; the same
// slice may safely back any number of concurrent expansions.
type Token struct {
	Kind  Kind
	Text  string
	Joint bool
	Delim Delim
	Nodes []Token
	Pos   Position
}

// Ident constructs an identifier token.
func Ident(text string) Token {
	return Token{Kind: KindIdent, Text: text}
}

// Lit constructs a literal token holding its verbatim source text.
func Lit(text string) Token {
	return Token{Kind: KindLiteral, Text: text}
}

// Punct constructs a punctuation token. A joint token is emitted with no
// space separating it from the token that follows.
func Punct(r rune, joint bool) Token {
	return Token{Kind: KindPunct, Text: string(r), Joint: joint}
}

// Group constructs a delimited group of nested tokens.
func Group(d Delim, nodes ...Token) Token {
	return Token{Kind: KindGroup, Delim: d, Nodes: nodes}
}

// IsIdent reports whether t is an identifier with the given text.
func (t Token) IsIdent(text string) bool {
	return t.Kind == KindIdent && t.Text == text
}

// IsPunct reports whether t is the given punctuation rune.
func (t Token) IsPunct(r rune) bool {
	return t.Kind == KindPunct && t.Text == string(r)
}

// String returns a compact single-line representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case KindGroup:
		return fmt.Sprintf("%s%s(%d)", t.Kind, t.Delim.Open(), len(t.Nodes))
	case KindPunct:
		if t.Joint {
			return fmt.Sprintf("%s(%s, joint)", t.Kind, t.Text)
		}

		fallthrough
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}

// Print writes a formatted tree representation of the token sequence.
func Print(w io.Writer, tokens []Token) {
	printIndent(w, tokens, 0)
}

func printIndent(w io.Writer, tokens []Token, indent int) {
	prefix := strings.Repeat("  ", indent)

	for _, t := range tokens {
		if t.Kind == KindGroup {
			fmt.Fprintf(w, "%sGroup %s%s\n", prefix, t.Delim.Open(), t.Delim.Close())
			printIndent(w, t.Nodes, indent+1)

			continue
		}

		fmt.Fprintf(w, "%s%s @%s\n", prefix, t.String(), t.Pos)
	}
}
