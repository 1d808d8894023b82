package lang

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Token{},
		},
		{
			name:  "identifiers",
			input: "let name _tmp x1",
			want: []Token{
				Ident("let"), Ident("name"), Ident("_tmp"), Ident("x1"),
			},
		},
		{
			name:  "integer literal",
			input: "42",
			want:  []Token{Lit("42")},
		},
		{
			name:  "decimal literal",
			input: "3.14",
			want:  []Token{Lit("3.14")},
		},
		{
			name:  "range dots are not a decimal point",
			input: "0..3",
			want: []Token{
				Lit("0"), Punct('.', true), Punct('.', false), Lit("3"),
			},
		},
		{
			name:  "inclusive range operator",
			input: "0..=3",
			want: []Token{
				Lit("0"), Punct('.', true), Punct('.', true),
				Punct('=', false), Lit("3"),
			},
		},
		{
			name:  "quoted string keeps quotes",
			input: `"hello world"`,
			want:  []Token{Lit(`"hello world"`)},
		},
		{
			name:  "escaped quote",
			input: `"a\"b"`,
			want:  []Token{Lit(`"a\"b"`)},
		},
		{
			name:  "sigil before identifier is not joint",
			input: "*name",
			want:  []Token{Punct('*', false), Ident("name")},
		},
		{
			name:  "punctuation run is joint",
			input: "+=",
			want:  []Token{Punct('+', true), Punct('=', false)},
		},
		{
			name:  "space breaks a punctuation run",
			input: "+ =",
			want:  []Token{Punct('+', false), Punct('=', false)},
		},
		{
			name:  "parenthesized group",
			input: "f(a, b)",
			want: []Token{
				Ident("f"),
				Group(DelimParen,
					Ident("a"), Punct(',', false), Ident("b"),
				),
			},
		},
		{
			name:  "nested groups",
			input: "{[x]}",
			want: []Token{
				Group(DelimBrace, Group(DelimBracket, Ident("x"))),
			},
		},
		{
			name:  "line comment skipped",
			input: "a // comment\nb",
			want:  []Token{Ident("a"), Ident("b")},
		},
		{
			name:  "declaration shape",
			input: "let &v = [1];",
			want: []Token{
				Ident("let"), Punct('&', false), Ident("v"),
				Punct('=', false),
				Group(DelimBracket, Lit("1")),
				Punct(';', false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex(%q) error: %v", tt.input, err)
			}

			if !tokensEqual(got, tt.want) {
				t.Errorf("Lex(%q) =\n%v\nwant\n%v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "unclosed paren", input: "(a"},
		{name: "unclosed bracket", input: "[1, 2"},
		{name: "unexpected closer", input: "a)"},
		{name: "mismatched delimiters", input: "[a)"},
		{name: "unterminated string", input: `"abc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Lex(tt.input)
			if err == nil {
				t.Fatalf("Lex(%q) succeeded, want error", tt.input)
			}

			if !errors.Is(err, ErrLex) {
				t.Errorf("Lex(%q) error %v, want ErrLex", tt.input, err)
			}
		})
	}
}

func TestLexPositions(t *testing.T) {
	t.Parallel()

	tokens, err := Lex("ab\n cd")
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}

	first, second := tokens[0].Pos, tokens[1].Pos

	if first.Line != 1 || first.Column != 1 || first.Offset != 0 {
		t.Errorf("first token at %+v, want 1:1 offset 0", first)
	}

	if second.Line != 2 || second.Column != 2 || second.Offset != 4 {
		t.Errorf("second token at %+v, want 2:2 offset 4", second)
	}
}

// tokensEqual compares token trees ignoring positions.
func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Kind != b[i].Kind ||
			a[i].Text != b[i].Text ||
			a[i].Joint != b[i].Joint ||
			a[i].Delim != b[i].Delim ||
			!tokensEqual(a[i].Nodes, b[i].Nodes) {
			return false
		}
	}

	return true
}

func FuzzLex(f *testing.F) {
	seeds := []string{
		"",
		"let &v = [a, b];",
		"let &n = 0..=9;",
		"f(*x, {y})",
		`"str" // comment`,
		"a~b *c ..=",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		tokens, err := Lex(src)
		if err != nil {
			return
		}

		// Serialization of any lexed input must not panic, and its output
		// must lex cleanly again.
		_, err = Lex(Serialize(tokens))
		if err != nil {
			t.Errorf("reserialized source failed to lex: %v", err)
		}
	})
}
