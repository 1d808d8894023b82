package log

import (
	"slices"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Level
	}{
		{name: "trace", input: "trace", want: LevelTrace},
		{name: "trace uppercase", input: "TRACE", want: LevelTrace},
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "info", input: "info", want: LevelInfo},
		{name: "warn", input: "warn", want: LevelWarn},
		{name: "error", input: "error", want: LevelError},
		{name: "mixed case", input: "Warn", want: LevelWarn},
		{name: "unknown falls back", input: "verbose", want: DefaultLevel},
		{name: "empty falls back", input: "", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v",
					tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{level: LevelTrace, want: "trace"},
		{level: LevelDebug, want: "debug"},
		{level: LevelInfo, want: "info"},
		{level: LevelWarn, want: "warn"},
		{level: LevelError, want: "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q",
				tt.level, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{name: "json", input: "json", want: FormatJSON},
		{name: "text", input: "text", want: FormatText},
		{name: "uppercase", input: "TEXT", want: FormatText},
		{name: "padded", input: "  json  ", want: FormatJSON},
		{name: "unknown falls back", input: "xml", want: DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v",
					tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelsIterator(t *testing.T) {
	t.Parallel()

	want := []string{"trace", "debug", "info", "warn", "error"}
	got := slices.Collect(Levels())

	if !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}

func TestFormatsIterator(t *testing.T) {
	t.Parallel()

	want := []string{"json", "text"}
	got := slices.Collect(Formats())

	if !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{name: "named layout", layout: "Kitchen", want: "10:30AM"},
		{name: "alias", layout: "rfc3339", want: "2024-06-15T10:30:00Z"},
		{name: "disabled", layout: "", want: ""},
		{name: "none keyword", layout: "none", want: ""},
		{name: "verbatim", layout: "2006/01/02", want: "2024/06/15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format := makeFormatTimeFunc(tt.layout)
			if got := format(ref); got != tt.want {
				t.Errorf("format(%v) = %q, want %q", ref, got, tt.want)
			}
		})
	}
}
