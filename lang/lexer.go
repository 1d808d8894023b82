package lang

import (
	"log/slog"
	"unicode"
	"unicode/utf8"
)

// Lex tokenizes template source text into the token sequence consumed by
// [Parse]. Delimiter pairs nest into groups; every rune that is not part of
// an identifier, literal, comment, or delimiter becomes punctuation, marked
// joint when another punctuation rune follows it with no intervening space.
func Lex(src string) ([]Token, error) {
	l := &lexer{input: []byte(src), line: 1, col: 1}

	tokens, err := l.run(DelimNone)
	if err != nil {
		return nil, err
	}

	if !l.eof() {
		// run stops early only at an unmatched closing delimiter
		return nil, ErrLex.WithPosition(l.position()).
			With(slog.String("unexpected", string(l.peek())))
	}

	return tokens, nil
}

// lexer holds the scanner state.
type lexer struct {
	input []byte
	pos   int
	line  int
	col   int
}

// run scans tokens until the closing delimiter of d, an unmatched closer,
// or end of input.
func (l *lexer) run(d Delim) ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		l.skipWhitespaceAndComments()

		if l.eof() {
			if d != DelimNone {
				return nil, ErrLex.WithPosition(l.position()).
					With(slog.String("expected", d.Close()))
			}

			return tokens, nil
		}

		ch := l.peek()

		if open := openDelim(ch); open != DelimNone {
			pos := l.position()
			l.advance()

			nodes, err := l.run(open)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, Token{
				Kind:  KindGroup,
				Delim: open,
				Nodes: nodes,
				Pos:   pos,
			})

			continue
		}

		if close := closeDelim(ch); close != DelimNone {
			if close != d {
				// Unmatched closer: the top level reports it, a nested
				// group propagates the mismatch.
				if d == DelimNone {
					return tokens, nil
				}

				return nil, ErrLex.WithPosition(l.position()).
					With(slog.String("expected", d.Close())).
					With(slog.String("found", string(ch)))
			}

			l.advance()

			return tokens, nil
		}

		tok, err := l.scan()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}
}

// scan lexes a single non-group token.
func (l *lexer) scan() (Token, error) {
	pos := l.position()
	ch := l.peek()

	switch {
	case isIdentifierStart(ch):
		return Token{Kind: KindIdent, Text: l.scanIdentifier(), Pos: pos}, nil

	case unicode.IsDigit(ch):
		return Token{Kind: KindLiteral, Text: l.scanNumber(), Pos: pos}, nil

	case ch == '"' || ch == '\'' || ch == '`':
		text, err := l.scanString(ch)
		if err != nil {
			return Token{}, err
		}

		return Token{Kind: KindLiteral, Text: text, Pos: pos}, nil

	default:
		l.advance()

		return Token{
			Kind:  KindPunct,
			Text:  string(ch),
			Joint: l.jointFollows(),
			Pos:   pos,
		}, nil
	}
}

// jointFollows reports whether the rune at the current position continues a
// punctuation run, which marks the previous punctuation token joint so the
// serializer keeps the run intact (e.g. "..=", "+=").
func (l *lexer) jointFollows() bool {
	if l.eof() {
		return false
	}

	ch := l.peek()

	return !unicode.IsSpace(ch) &&
		!isIdentifierStart(ch) &&
		!unicode.IsDigit(ch) &&
		ch != '"' && ch != '\'' && ch != '`' &&
		openDelim(ch) == DelimNone &&
		closeDelim(ch) == DelimNone
}

// scanIdentifier consumes an identifier and returns its text.
func (l *lexer) scanIdentifier() string {
	start := l.pos

	for !l.eof() && isIdentifierContinue(l.peek()) {
		l.advance()
	}

	return string(l.input[start:l.pos])
}

// scanNumber consumes a numeric literal. A decimal point is consumed only
// when a digit follows it, so a range bound followed by ".." lexes as an
// integer literal and two punctuation tokens.
func (l *lexer) scanNumber() string {
	start := l.pos

	for !l.eof() && unicode.IsDigit(l.peek()) {
		l.advance()
	}

	if !l.eof() && l.peek() == '.' {
		if next, ok := l.peekAfter('.'); ok && unicode.IsDigit(next) {
			l.advance() // '.'

			for !l.eof() && unicode.IsDigit(l.peek()) {
				l.advance()
			}
		}
	}

	return string(l.input[start:l.pos])
}

// scanString consumes a quoted literal including its quotes.
func (l *lexer) scanString(quote rune) (string, error) {
	start := l.pos

	l.advance() // opening quote

	for !l.eof() {
		ch := l.peek()

		if ch == '\\' {
			l.advance()

			if !l.eof() {
				l.advance()
			}

			continue
		}

		l.advance()

		if ch == quote {
			return string(l.input[start:l.pos]), nil
		}
	}

	return "", ErrLex.WithPosition(l.position()).
		With(slog.String("error", "unterminated string"))
}

// Helper methods

func (l *lexer) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(l.input[l.pos:])

	return r
}

// peekAfter returns the rune following one occurrence of ch at the current
// position, if present.
func (l *lexer) peekAfter(ch rune) (rune, bool) {
	n := utf8.RuneLen(ch)
	if l.pos+n >= len(l.input) {
		return 0, false
	}

	r, _ := utf8.DecodeRune(l.input[l.pos+n:])

	return r, true
}

func (l *lexer) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRune(l.input[l.pos:])

	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		for !l.eof() && unicode.IsSpace(l.peek()) {
			l.advance()
		}

		if l.peek() == '/' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '/' {
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}

			continue
		}

		return
	}
}

// Character classification

func openDelim(r rune) Delim {
	switch r {
	case '(':
		return DelimParen
	case '{':
		return DelimBrace
	case '[':
		return DelimBracket
	default:
		return DelimNone
	}
}

func closeDelim(r rune) Delim {
	switch r {
	case ')':
		return DelimParen
	case '}':
		return DelimBrace
	case ']':
		return DelimBracket
	default:
		return DelimNone
	}
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierContinue(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}
