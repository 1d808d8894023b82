package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/ditto/pkg"
)

func parseVersion(t *testing.T, out *bytes.Buffer, args ...string) *kong.Context {
	t.Helper()

	grammar := struct {
		Version Version `cmd:""`
	}{}

	parser, err := kong.New(&grammar,
		kong.Writers(out, out),
		kong.Exit(func(int) {}),
		kong.Vars{
			ConfigIdentifier: "/tmp/conf/config.yaml",
			CacheIdentifier:  "/tmp/cache",
		},
	)
	if err != nil {
		t.Fatalf("kong.New error: %v", err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", args, err)
	}

	return ktx
}

func TestKongContextRoundTrip(t *testing.T) {
	t.Parallel()

	if got := kongContextFrom(context.Background()); got != nil {
		t.Fatalf("kongContextFrom(background) = %v, want nil", got)
	}

	var out bytes.Buffer

	ktx := parseVersion(t, &out, "version")

	if got := kongContextFrom(WithContext(context.Background(), ktx)); got != ktx {
		t.Fatalf("kongContextFrom returned %v, want %v", got, ktx)
	}
}

func TestVersionRun(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	ktx := parseVersion(t, &out, "version", "-v")
	ctx := WithContext(context.Background(), ktx)

	version := Version{Verbose: true}

	err := version.Run(ctx)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	text := out.String()

	for _, want := range []string{
		pkg.Name + " version " + pkg.Version,
		ConfigIdentifier + ": /tmp/conf/config.yaml",
		CacheIdentifier + ": /tmp/cache",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output %q missing %q", text, want)
		}
	}
}
