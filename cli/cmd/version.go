package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ardnew/ditto/pkg"
)

// Version prints version information.
type Version struct {
	Verbose bool `help:"Also print configuration paths." short:"v"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	var out io.Writer = os.Stdout

	ktx := kongContextFrom(ctx)
	if ktx != nil {
		out = ktx.Stdout
	}

	_, err := fmt.Fprintf(out, "%s version %s\n", pkg.Name, pkg.Version)
	if err != nil || !v.Verbose || ktx == nil {
		return err
	}

	vars := ktx.Model.Vars()

	for _, id := range []string{ConfigIdentifier, CacheIdentifier} {
		path, ok := vars[id]
		if !ok {
			continue
		}

		_, err = fmt.Fprintf(out, "%s: %s\n", id, path)
		if err != nil {
			return err
		}
	}

	return nil
}
