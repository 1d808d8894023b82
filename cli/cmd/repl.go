package cmd

import (
	"context"
	"io"

	"github.com/ardnew/ditto/cli/cmd/repl"
	"github.com/ardnew/ditto/lang"
	"github.com/ardnew/ditto/log"
)

// Repl starts an interactive playground, optionally seeded with the
// declarations of an existing template.
type Repl struct {
	Source string `arg:"" optional:"" help:"Template whose declarations seed the session." name:"source"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var seed string

	if r.Source != "" && r.Source != stdinSource {
		source, closeSource, err := openSource(r.Source)
		if err != nil {
			return err
		}
		defer closeSource()

		data, err := io.ReadAll(source)
		if err != nil {
			return lang.ErrReadInput.Wrap(err)
		}

		seed = string(data)
	}

	return repl.Run(ctx, seed, log.Default())
}
