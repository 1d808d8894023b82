package lang

import (
	"slices"
	"testing"
)

func TestUnresolved(t *testing.T) {
	t.Parallel()

	table := new(Table)
	table.Set("*name", []string{"a"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "declared reference is resolved",
			text: "use *name here",
			want: nil,
		},
		{
			name: "unknown reference reported",
			text: "use *nmae here",
			want: []string{"*nmae"},
		},
		{
			name: "duplicates collapse to first occurrence",
			text: "*x *y *x",
			want: []string{"*x", "*y"},
		},
		{
			name: "bare sigil is not a reference",
			text: "a * b",
			want: nil,
		},
		{
			name: "no references",
			text: "plain text",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := table.Unresolved(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("Unresolved(%q) = %v, want %v",
					tt.text, got, tt.want)
			}
		})
	}
}

func TestNearest(t *testing.T) {
	t.Parallel()

	table := new(Table)
	table.Set("*name", []string{"a"})
	table.Set("*number", []string{"b"})
	table.Set("*other", []string{"c"})

	near := table.Nearest("*nam", nearestLimit)

	if len(near) == 0 {
		t.Fatal("Nearest returned no candidates for a near miss")
	}

	if !slices.Contains(near, "name") {
		t.Errorf("Nearest(*nam) = %v, expected to contain %q", near, "name")
	}

	if len(near) > nearestLimit {
		t.Errorf("Nearest returned %d candidates, limit %d",
			len(near), nearestLimit)
	}
}

func TestNearestEmptyTable(t *testing.T) {
	t.Parallel()

	table := new(Table)

	if near := table.Nearest("*anything", nearestLimit); len(near) != 0 {
		t.Errorf("Nearest on empty table = %v, want empty", near)
	}
}
