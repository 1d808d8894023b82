package lang

import (
	"slices"
	"testing"
)

func TestTableSet(t *testing.T) {
	t.Parallel()

	table := new(Table)
	table.Set("*a", []string{"1"})
	table.Set("*b", []string{"2"})
	table.Set("*a", []string{"3"})

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	// Last declaration wins, position preserved.
	variants, ok := table.Get("*a")
	if !ok || !slices.Equal(variants, []string{"3"}) {
		t.Errorf("Get(*a) = %v, %v; want [3], true", variants, ok)
	}

	if names := table.Names(); !slices.Equal(names, []string{"*a", "*b"}) {
		t.Errorf("Names() = %v, want [*a *b]", names)
	}
}

func TestTableGetMissing(t *testing.T) {
	t.Parallel()

	table := new(Table)

	if _, ok := table.Get("*ghost"); ok {
		t.Error("Get on empty table reported a hit")
	}
}

func TestTableDescending(t *testing.T) {
	t.Parallel()

	table := new(Table)
	table.Set("*foo", []string{"x"})
	table.Set("*foobar", []string{"y"})
	table.Set("*bar", []string{"z"})

	want := []string{"*foobar", "*foo", "*bar"}
	if got := table.Descending(); !slices.Equal(got, want) {
		t.Errorf("Descending() = %v, want %v", got, want)
	}
}

func TestTableAllOrder(t *testing.T) {
	t.Parallel()

	table := new(Table)
	table.Set("*z", []string{"1"})
	table.Set("*a", []string{"2"})

	var names []string
	for name := range table.All() {
		names = append(names, name)
	}

	if !slices.Equal(names, []string{"*z", "*a"}) {
		t.Errorf("All() order = %v, want declaration order", names)
	}
}
