package cmd

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the template source at path, or stdin when path is "-".
// The returned closer is a no-op for stdin.
func openSource(path string) (io.Reader, func() error, error) {
	if path == stdinSource {
		return bufio.NewReader(os.Stdin), func() error { return nil }, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, ErrOpenSource.
			Wrap(err)
	}

	return bufio.NewReader(file), file.Close, nil
}
