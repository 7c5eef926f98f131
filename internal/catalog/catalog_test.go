package catalog

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	c, ok := Lookup("llm")
	if !ok {
		t.Fatal("expected llm to be in the catalogue")
	}
	if c.Title != "What is an LLM?" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Category != CategoryTechnology {
		t.Errorf("category = %q", c.Category)
	}

	if _, ok := Lookup("quantum-computing"); ok {
		t.Error("expected unknown id to miss")
	}
}

func TestIDs_CoversWholeCatalogue(t *testing.T) {
	ids := IDs()
	if len(ids) != 20 {
		t.Fatalf("expected 20 concepts, got %d", len(ids))
	}
	for _, id := range ids {
		c, ok := Lookup(id)
		if !ok {
			t.Fatalf("id %q not resolvable", id)
		}
		if c.ID != id {
			t.Errorf("concept %q carries id %q", id, c.ID)
		}
		if c.Title == "" || c.Description == "" {
			t.Errorf("concept %q has empty display fields", id)
		}
		if c.ReadTimeMinutes <= 0 {
			t.Errorf("concept %q has read time %d", id, c.ReadTimeMinutes)
		}

		related := Related(id, 3)
		if len(related) > 3 {
			t.Errorf("Related(%q, 3) returned %d concepts", id, len(related))
		}
		for _, r := range related {
			if r.ID == id {
				t.Errorf("Related(%q, 3) includes the concept itself", id)
			}
		}
	}
}

func TestByCategory(t *testing.T) {
	groups := ByCategory()
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}

	wantOrder := []Category{CategoryTechnology, CategoryFinance, CategoryScience, CategoryPsychology}
	total := 0
	for i, g := range groups {
		if g.Category != wantOrder[i] {
			t.Errorf("group %d = %q, want %q", i, g.Category, wantOrder[i])
		}
		if g.Emoji == "" || g.Color == "" {
			t.Errorf("group %q missing display metadata", g.Category)
		}
		for j := 1; j < len(g.Concepts); j++ {
			if g.Concepts[j-1].Title > g.Concepts[j].Title {
				t.Errorf("group %q not sorted by title", g.Category)
			}
		}
		total += len(g.Concepts)
	}
	if total != 20 {
		t.Errorf("groups cover %d concepts, want 20", total)
	}
}

func TestByCategory_Stable(t *testing.T) {
	if !reflect.DeepEqual(ByCategory(), ByCategory()) {
		t.Error("expected identical results across calls")
	}
}

func TestRelated(t *testing.T) {
	related := Related("llm", 3)
	if len(related) != 3 {
		t.Fatalf("expected 3 related concepts, got %d", len(related))
	}

	sameCategory := 0
	for _, c := range related {
		if c.ID == "llm" {
			t.Error("related includes the concept itself")
		}
		if c.Category == CategoryTechnology {
			sameCategory++
		}
	}
	if sameCategory != 2 {
		t.Errorf("expected 2 same-category concepts, got %d", sameCategory)
	}
	// Same-category entries lead the result.
	if related[0].Category != CategoryTechnology || related[1].Category != CategoryTechnology {
		t.Error("same-category concepts should come first")
	}
}

func TestRelated_Stable(t *testing.T) {
	if !reflect.DeepEqual(Related("dna", 3), Related("dna", 3)) {
		t.Error("expected identical results across calls")
	}
}

func TestRelated_UnknownID(t *testing.T) {
	if got := Related("nope", 3); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestRelated_BoundedByN(t *testing.T) {
	if got := Related("llm", 1); len(got) != 1 {
		t.Errorf("expected 1 concept, got %d", len(got))
	}
	if got := Related("llm", 0); len(got) != 0 {
		t.Errorf("expected empty result for n=0, got %d", len(got))
	}
}

func TestDifficultyColor(t *testing.T) {
	cases := map[Difficulty]string{
		DifficultyEasy:   "green",
		DifficultyMedium: "yellow",
		DifficultyHard:   "orange",
	}
	for d, want := range cases {
		if got := DifficultyColor(d); got != want {
			t.Errorf("DifficultyColor(%q) = %q, want %q", d, got, want)
		}
	}
}
