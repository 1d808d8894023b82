package lang

import (
	"strings"
	"testing"
)

func makeTable(entries map[string][]string, order ...string) *Table {
	table := new(Table)
	for _, name := range order {
		table.Set(name, entries[name])
	}

	return table
}

func TestDuplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		table    *Table
		want     string
	}{
		{
			name:     "no references returns input verbatim",
			template: "plain text with no variables",
			table:    new(Table),
			want:     "plain text with no variables",
		},
		{
			name:     "empty template",
			template: "",
			table:    new(Table),
			want:     "",
		},
		{
			name:     "single variable tiles once per variant",
			template: "x = *v ;",
			table: makeTable(map[string][]string{
				"*v": {"1", "2", "3"},
			}, "*v"),
			want: "x = 1 ;x = 2 ;x = 3 ;",
		},
		{
			name:     "short list repeats its final variant",
			template: "(*a , *b)",
			table: makeTable(map[string][]string{
				"*a": {"1", "2", "3", "4"},
				"*b": {"3", "2"},
			}, "*a", "*b"),
			want: "(1 , 3)(2 , 2)(3 , 2)(4 , 2)",
		},
		{
			name:     "longer name wins over its prefix",
			template: "*foobar *foo",
			table: makeTable(map[string][]string{
				"*foo":    {"A"},
				"*foobar": {"B"},
			}, "*foo", "*foobar"),
			want: "B A",
		},
		{
			name:     "multiple sites of one variable in a repetition",
			template: "*v+*v",
			table: makeTable(map[string][]string{
				"*v": {"1", "2"},
			}, "*v"),
			want: "1+12+2",
		},
		{
			name:     "empty string variant drops the reference",
			template: "f*s()",
			table: makeTable(map[string][]string{
				"*s": {"", "_x"},
			}, "*s"),
			want: "f()f_x()",
		},
		{
			name:     "unreferenced variable does not multiply",
			template: "constant",
			table: makeTable(map[string][]string{
				"*v": {"1", "2", "3"},
			}, "*v"),
			want: "constant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Duplicate(tt.template, tt.table); got != tt.want {
				t.Errorf("Duplicate(%q) = %q, want %q",
					tt.template, got, tt.want)
			}
		})
	}
}

func TestDuplicateRepetitionCount(t *testing.T) {
	t.Parallel()

	table := makeTable(map[string][]string{
		"*a": {"1", "2"},
		"*b": {"1", "2", "3", "4", "5"},
	}, "*a", "*b")

	// Only *a occurs, so its list alone sets the repetition count.
	out := Duplicate("*a;", table)

	if got := strings.Count(out, ";"); got != 2 {
		t.Errorf("repetitions = %d, want 2 (longest referenced list)", got)
	}
}

func BenchmarkDuplicate(b *testing.B) {
	table := makeTable(map[string][]string{
		"*name": {"alpha", "beta", "gamma", "delta"},
		"*num":  {"0", "1", "2", "3", "4", "5", "6", "7"},
	}, "*name", "*num")

	template := strings.Repeat("let v*num = field_*name . load (*num) ; ", 16)

	b.ReportAllocs()

	for b.Loop() {
		Duplicate(template, table)
	}
}
