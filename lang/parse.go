package lang

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/ditto/log"
)

// parser consumes the leading run of variable declarations from a token
// sequence, leaving everything after the last declaration untouched.
type parser struct {
	tokens []Token
	pos    int
	table  *Table
	logger log.Logger
}

// run recognizes declarations until the input no longer matches
// "let & name = value ;". Failures inside a recognized declaration are
// fatal; a non-match before the keyword simply ends the declaration block.
func (p *parser) run() error {
	for p.atDeclaration() {
		err := p.declaration()
		if err != nil {
			return err
		}
	}

	return nil
}

// atDeclaration reports whether the next two tokens begin a declaration.
func (p *parser) atDeclaration() bool {
	return p.pos+1 < len(p.tokens) &&
		p.tokens[p.pos].IsIdent(KeywordLet) &&
		p.tokens[p.pos+1].IsPunct(SigilDecl)
}

// declaration parses one "let &name = value;" form and inserts the fully
// resolved variable into the table.
func (p *parser) declaration() error {
	p.pos += 2 // "let" "&"

	// The zero token peek returns at end of input is an empty identifier,
	// so eof must be ruled out before the kind check means anything.
	name := p.peek()
	if p.eof() || name.Kind != KindIdent {
		return ErrStructure.WithPosition(p.position()).
			With(slog.String("expected", "variable name"))
	}

	p.pos++

	if !p.peek().IsPunct('=') {
		return ErrStructure.WithPosition(p.position()).
			With(slog.String("expected", "=")).
			With(slog.String("name", name.Text))
	}

	p.pos++

	variants, err := p.value()
	if err != nil {
		return err
	}

	if !p.peek().IsPunct(';') {
		return ErrStructure.WithPosition(p.position()).
			With(slog.String("expected", ";")).
			With(slog.String("name", name.Text))
	}

	p.pos++

	key := string(SigilRef) + name.Text
	p.table.Set(key, variants)

	p.logger.Trace("declared variable",
		slog.String("name", key),
		slog.Int("variants", len(variants)),
	)

	return nil
}

// value parses one value source: a bracketed variant list, a single
// delimited group, or an integer range.
func (p *parser) value() ([]string, error) {
	tok := p.peek()

	switch {
	case tok.Kind == KindGroup && tok.Delim == DelimBracket:
		p.pos++

		return p.list(tok)

	case tok.Kind == KindGroup:
		p.pos++

		// Sole variant, reused unchanged for every repetition.
		return []string{p.resolve(Serialize(tok.Nodes))}, nil

	case tok.Kind == KindLiteral:
		return p.expandRange()

	default:
		return nil, ErrStructure.WithPosition(p.position()).
			With(slog.String("expected", "value"))
	}
}

// list serializes and resolves each top-level comma-separated token run of
// a bracketed group. A run consisting of the NONE keyword stores the empty
// string. Nested groups are opaque at this level, so only commas between
// runs act as separators.
func (p *parser) list(g Token) ([]string, error) {
	variants := make([]string, 0, len(g.Nodes))
	run := make([]Token, 0, len(g.Nodes))

	flush := func() {
		if len(run) == 0 {
			return // tolerate a trailing comma
		}

		text := Serialize(run)
		run = run[:0]

		if text == KeywordNone {
			variants = append(variants, "")

			return
		}

		variants = append(variants, p.resolve(text))
	}

	for _, tok := range g.Nodes {
		if tok.IsPunct(',') {
			flush()

			continue
		}

		run = append(run, tok)
	}

	flush()

	if len(variants) == 0 {
		return nil, ErrStructure.WithPosition(g.Pos).
			With(slog.String("expected", "at least one value"))
	}

	return variants, nil
}

// expandRange parses "lo .. hi" or "lo ..= hi" and expands it eagerly to
// one variant per integer in increasing order. Both bounds must be unsigned
// decimal integers representable in 64 bits.
func (p *parser) expandRange() ([]string, error) {
	lo := p.peek()

	start, err := strconv.ParseUint(lo.Text, 10, 64)
	if err != nil {
		return nil, ErrRange.WithPosition(p.position()).
			With(slog.String("bound", lo.Text)).
			Wrap(err)
	}

	p.pos++

	for range 2 {
		if !p.peek().IsPunct('.') {
			return nil, ErrRange.WithPosition(p.position()).
				With(slog.String("expected", ".."))
		}

		p.pos++
	}

	inclusive := false
	if p.peek().IsPunct('=') {
		inclusive = true

		p.pos++
	}

	hi := p.peek()

	end, err := strconv.ParseUint(hi.Text, 10, 64)
	if hi.Kind != KindLiteral || err != nil {
		return nil, ErrRange.WithPosition(p.position()).
			With(slog.String("bound", hi.Text)).
			Wrap(err)
	}

	p.pos++

	if !inclusive {
		if start >= end {
			return nil, ErrRange.WithPosition(lo.Pos).
				With(slog.String("error", "empty range")).
				With(slog.Uint64("start", start), slog.Uint64("end", end))
		}

		end-- // iterate with an inclusive bound to survive 64-bit extremes
	} else if start > end {
		return nil, ErrRange.WithPosition(lo.Pos).
			With(slog.String("error", "empty range")).
			With(slog.Uint64("start", start), slog.Uint64("end", end))
	}

	variants := make([]string, 0, end-start+1)

	for v := start; ; v++ {
		variants = append(variants, strconv.FormatUint(v, 10))

		if v == end {
			break
		}
	}

	return variants, nil
}

// resolve substitutes every variable declared so far into text. This is the
// duplication engine applied to a single value string, which is why a value
// can never reference the variable it declares or one declared later: the
// table does not contain them yet. Such references pass through verbatim
// and are reported when they sit close to a declared name.
func (p *parser) resolve(text string) string {
	out := Duplicate(text, p.table)

	for _, ref := range p.table.Unresolved(out) {
		near := p.table.Nearest(ref, nearestLimit)
		if len(near) == 0 {
			continue
		}

		p.logger.Warn("unresolved variable reference",
			slog.String("reference", ref),
			slog.Any("near", near),
		)
	}

	return out
}

// Helper methods

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current token, or the zero token at end of input.
func (p *parser) peek() Token {
	if p.eof() {
		return Token{}
	}

	return p.tokens[p.pos]
}

// position returns the current token's position, clamped to the final
// token when the input is exhausted.
func (p *parser) position() Position {
	if p.eof() {
		if n := len(p.tokens); n > 0 {
			return p.tokens[n-1].Pos
		}

		return Position{}
	}

	return p.tokens[p.pos].Pos
}
