package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/ditto/lang"
	"github.com/ardnew/ditto/log"
)

// Expand reads a template, applies its declarations, and writes the
// expanded output.
type Expand struct {
	Source string `arg:"" default:"-" help:"Template source file or '-' for stdin." name:"source"`

	Output string `help:"Output file ('-' for stdout)." short:"o" default:"-"`
}

// Run executes the expand command.
func (e *Expand) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, closeSource, err := openSource(e.Source)
	if err != nil {
		return err
	}
	defer closeSource()

	result, err := lang.ExpandReader(ctx, source,
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)

	if e.Output != stdinSource {
		file, err := os.Create(e.Output)
		if err != nil {
			return ErrWriteOutput.
				With(slog.String("file", e.Output)).
				Wrap(err)
		}
		defer file.Close()

		out = file
	}

	_, err = io.WriteString(out, result)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if result != "" && result[len(result)-1] != '\n' {
		_, err = io.WriteString(out, "\n")
	}

	return err
}
