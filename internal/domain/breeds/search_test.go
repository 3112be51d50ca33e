package breeds

import "testing"

func namedTable(names ...string) Table {
	t := make(Table, 0, len(names))
	for _, n := range names {
		t = append(t, Breed{Name: n})
	}
	return t
}

func TestFindMatches_CaseInsensitiveSubstring(t *testing.T) {
	table := namedTable("Siberian Husky", "Labrador Retriever", "Bulldog")

	got := FindMatches(table, "husky")
	if len(got) != 1 || got[0].Name != "Siberian Husky" {
		t.Fatalf("expected exactly [Siberian Husky], got %+v", got)
	}

	got = FindMatches(table, "BULL")
	if len(got) != 1 || got[0].Name != "Bulldog" {
		t.Fatalf("expected exactly [Bulldog], got %+v", got)
	}
}

func TestFindMatches_EmptyQueryReturnsZeroRows(t *testing.T) {
	table := namedTable("Siberian Husky", "Labrador Retriever")

	got := FindMatches(table, "")
	if len(got) != 0 {
		t.Fatalf("empty query must return zero rows, got %d", len(got))
	}
}

func TestFindMatches_NoMatchIsNotAnError(t *testing.T) {
	table := namedTable("Beagle")

	got := FindMatches(table, "persa")
	if len(got) != 0 {
		t.Fatalf("expected zero rows, got %d", len(got))
	}
}

func TestFindMatches_PreservesInputOrder(t *testing.T) {
	table := namedTable("American Bulldog", "Beagle", "Bulldog", "French Bulldog")

	got := FindMatches(table, "bulldog")
	want := []string{"American Bulldog", "Bulldog", "French Bulldog"}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Name != w {
			t.Fatalf("order not preserved at %d: got %q, want %q", i, got[i].Name, w)
		}
	}
}

func TestFindMatches_MissingNameNeverMatches(t *testing.T) {
	table := Table{
		{Name: ""},
		{Name: "Husky"},
		{Name: ""},
	}

	got := FindMatches(table, "usk")
	if len(got) != 1 || got[0].Name != "Husky" {
		t.Fatalf("records without name must not match, got %+v", got)
	}
}

func TestFindMatches_DoesNotMutateInput(t *testing.T) {
	table := namedTable("Husky", "Beagle")

	_ = FindMatches(table, "e")
	if table[0].Name != "Husky" || table[1].Name != "Beagle" {
		t.Fatalf("input table mutated: %+v", table)
	}
}
