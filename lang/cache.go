package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/ditto/log"
)

// expandCache stores expanded output keyed by a hash of the source text.
// Expansion is a pure function of its input, so identical sources always
// produce identical output and the cache can never go stale.
//
//nolint:gochecknoglobals
var expandCache sync.Map

// ExpandReader reads all template source from r and expands it. The input
// is wrapped with asynchronous read-ahead so data is prefetched while
// earlier chunks are hashed, and results are memoized by content hash:
// expanding the same source twice tokenizes and parses it only once.
func ExpandReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (string, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.Wrap(err)
	}

	key := strconv.FormatUint(xxh3.Hash(data), 36)

	if out, ok := expandCache.Load(key); ok {
		log.TraceContext(ctx, "expansion cache hit",
			slog.String("key", key),
			slog.Int("source_length", len(data)),
		)

		return out.(string), nil
	}

	out, err := ExpandString(ctx, string(data), opts...)
	if err != nil {
		return "", err
	}

	expandCache.Store(key, out)

	return out, nil
}

// ClearCache removes all memoized expansions.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	expandCache.Clear()
}
