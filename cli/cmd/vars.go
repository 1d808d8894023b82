package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/ditto/lang"
	"github.com/ardnew/ditto/log"
)

// Vars parses the declarations of a template and prints the frozen
// variable table without expanding the body.
type Vars struct {
	Source string `arg:"" default:"-" help:"Template source file or '-' for stdin." name:"source"`

	Format string `default:"text" enum:"text,yaml" help:"Output format." short:"F"`
}

// Run executes the vars command.
func (v *Vars) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, closeSource, err := openSource(v.Source)
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

	template, err := lang.Parse(ctx, tokens,
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	if v.Format == "yaml" {
		return writeYAML(os.Stdout, template.Table)
	}

	return writeText(os.Stdout, template.Table)
}

// writeText prints one variable per line in declaration order.
func writeText(w io.Writer, table *lang.Table) error {
	for name, variants := range table.All() {
		quoted := make([]string, len(variants))
		for i, variant := range variants {
			quoted[i] = fmt.Sprintf("%q", variant)
		}

		_, err := fmt.Fprintf(w, "%s = [%s]\n",
			name, strings.Join(quoted, ", "))
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

// writeYAML prints the table as a YAML sequence preserving declaration
// order.
func writeYAML(w io.Writer, table *lang.Table) error {
	type entry struct {
		Name     string   `yaml:"name"`
		Variants []string `yaml:"variants"`
	}

	entries := make([]entry, 0, table.Len())

	for name, variants := range table.All() {
		entries = append(entries, entry{Name: name, Variants: variants})
	}

	out, err := yaml.Marshal(entries)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(out)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
