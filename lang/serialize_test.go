package lang

import "testing"

func TestSerialize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name:   "empty sequence",
			tokens: nil,
			want:   "",
		},
		{
			name:   "single token",
			tokens: []Token{Ident("x")},
			want:   "x",
		},
		{
			name:   "space between tokens",
			tokens: []Token{Ident("let"), Ident("x")},
			want:   "let x",
		},
		{
			name: "joint punctuation run",
			tokens: []Token{
				Lit("0"), Punct('.', true), Punct('.', false), Lit("3"),
			},
			want: "0 .. 3",
		},
		{
			name: "sigil glues to the following name",
			tokens: []Token{
				Ident("res"), Punct('*', false), Ident("name"),
			},
			want: "res *name",
		},
		{
			name: "joint modifier emits nothing and joins",
			tokens: []Token{
				Ident("u"), Punct('~', false), Lit("8"),
			},
			want: "u8",
		},
		{
			name: "joint modifier between references",
			tokens: []Token{
				Punct('*', false), Ident("a"),
				Punct('~', false),
				Punct('*', false), Ident("b"),
			},
			want: "*a*b",
		},
		{
			name: "visible group",
			tokens: []Token{
				Ident("f"),
				Group(DelimParen,
					Ident("a"), Punct(',', false), Ident("b"),
				),
			},
			want: "f (a , b)",
		},
		{
			name: "empty group",
			tokens: []Token{
				Ident("f"), Group(DelimParen), Ident("g"),
			},
			want: "f () g",
		},
		{
			name: "nested groups",
			tokens: []Token{
				Group(DelimBrace, Group(DelimBracket, Ident("x"))),
			},
			want: "{[x]}",
		},
		{
			name: "invisible group shares the outer stream",
			tokens: []Token{
				Ident("a"),
				Group(DelimNone, Ident("b"), Ident("c")),
				Ident("d"),
			},
			want: "a b c d",
		},
		{
			name: "invisible group preserves joint state",
			tokens: []Token{
				Punct('*', false),
				Group(DelimNone, Ident("name")),
			},
			want: "*name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Serialize(tt.tokens); got != tt.want {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	// Serialization output must lex back into the same token tree
	// (positions aside), which is what keeps repeated expansion stable.
	sources := []string{
		"let x = 1 ;",
		"f (a , b)",
		"0 .. 3",
		"res += *name ;",
		"{[x] (y)}",
	}

	for _, src := range sources {
		tokens, err := Lex(src)
		if err != nil {
			t.Fatalf("Lex(%q) error: %v", src, err)
		}

		out := Serialize(tokens)

		again, err := Lex(out)
		if err != nil {
			t.Fatalf("Lex(%q) error: %v", out, err)
		}

		if !tokensEqual(tokens, again) {
			t.Errorf("round trip of %q changed tokens:\n%v\n%v",
				src, tokens, again)
		}
	}
}
