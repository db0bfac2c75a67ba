package domain

import "testing"

func TestSortModeFromRecognizedValues(t *testing.T) {
	cases := map[string]SortMode{
		"name":     SortName,
		"created":  SortCreated,
		"due_date": SortDueDate,
		"due":      SortDueDate,
		"duedate":  SortDueDate,
		"custom":   SortCustom,
		" Custom ": SortCustom,
		"NAME":     SortName,
	}
	for input, want := range cases {
		mode, ok := SortModeFrom(input)
		if !ok {
			t.Errorf("SortModeFrom(%q) not recognized", input)
			continue
		}
		if mode != want {
			t.Errorf("SortModeFrom(%q) = %q, want %q", input, mode, want)
		}
	}
}

func TestSortModeFromRejectsEmptyAndUnknown(t *testing.T) {
	for _, input := range []string{"", "  ", "alphabetical", "custom-order"} {
		if mode, ok := SortModeFrom(input); ok {
			t.Errorf("SortModeFrom(%q) = %q, want rejection", input, mode)
		}
	}
}

func TestParseSortModeDefaultsToCustom(t *testing.T) {
	if mode := ParseSortMode(""); mode != SortCustom {
		t.Errorf("ParseSortMode(\"\") = %q, want %q", mode, SortCustom)
	}
	if mode := ParseSortMode("nonsense"); mode != SortCustom {
		t.Errorf("ParseSortMode(\"nonsense\") = %q, want %q", mode, SortCustom)
	}
	if mode := ParseSortMode("created"); mode != SortCreated {
		t.Errorf("ParseSortMode(\"created\") = %q, want %q", mode, SortCreated)
	}
}
