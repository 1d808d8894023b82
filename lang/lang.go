package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/ditto/log"
)

// Template is a parsed template: the frozen variable table built from its
// leading declarations and the remaining body tokens.
type Template struct {
	// Table holds every declared variable with its fully resolved
	// variants. It is read-only once Parse returns.
	Table *Table

	// Body is the token sequence following the final declaration.
	Body []Token

	logger log.Logger
}

// Option configures a Template during parsing.
type Option func(*Template)

// WithLogger attaches a structured logger used for parse tracing and
// unresolved-reference warnings. The zero logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(t *Template) {
		t.logger = logger
	}
}

// Parse consumes the leading variable declarations from tokens and returns
// the resulting template. The token sequence is not modified; Body aliases
// its tail.
func Parse(
	ctx context.Context,
	tokens []Token,
	opts ...Option,
) (*Template, error) {
	t := &Template{Table: new(Table)}

	for _, opt := range opts {
		opt(t)
	}

	p := &parser{tokens: tokens, table: t.Table, logger: t.logger}

	err := p.run()
	if err != nil {
		return nil, err
	}

	t.Body = tokens[p.pos:]

	t.logger.TraceContext(ctx, "parse complete",
		slog.Int("variables", t.Table.Len()),
		slog.Int("body_tokens", len(t.Body)),
	)

	return t, nil
}

// Expand serializes the template body and duplicates it against the
// variable table, returning the flat output text. Expand never fails; a
// body that references no variables is returned as a single copy, and an
// empty body yields empty output.
func (t *Template) Expand() string {
	return Duplicate(Serialize(t.Body), t.Table)
}

// ExpandTokens parses and expands a token sequence in one call.
func ExpandTokens(
	ctx context.Context,
	tokens []Token,
	opts ...Option,
) (string, error) {
	t, err := Parse(ctx, tokens, opts...)
	if err != nil {
		return "", err
	}

	return t.Expand(), nil
}

// ExpandString tokenizes, parses, and expands template source text.
func ExpandString(
	ctx context.Context,
	src string,
	opts ...Option,
) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", err
	}

	return ExpandTokens(ctx, tokens, opts...)
}
