package cmd

import (
	"context"
	"io"
	"os"

	"github.com/ardnew/ditto/lang"
)

// Tokens prints the token tree of a template without expanding it.
type Tokens struct {
	Source string `arg:"" default:"-" help:"Template source file or '-' for stdin." name:"source"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, closeSource, err := openSource(t.Source)
	if err != nil {
		return err
	}
	defer closeSource()

	data, err := io.ReadAll(source)
	if err != nil {
		return lang.ErrReadInput.Wrap(err)
	}

	tokens, err := lang.Lex(string(data))
	if err != nil {
		return err
	}

	lang.Print(os.Stdout, tokens)

	return nil
}
