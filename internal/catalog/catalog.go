// Package catalog holds the static registry of educational concepts.
// The data is fixed at compile time and read-only at runtime; every
// operation is a pure function over it.
package catalog

import "sort"

// Category groups concepts by subject area.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryFinance    Category = "Finance"
	CategoryScience    Category = "Science"
	CategoryPsychology Category = "Psychology"
)

// categoryOrder fixes the display order of categories.
var categoryOrder = []Category{
	CategoryTechnology,
	CategoryFinance,
	CategoryScience,
	CategoryPsychology,
}

// Difficulty rates how hard a concept is for the target age group.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Concept is the static display metadata for one catalogued topic.
type Concept struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Category        Category   `json:"category"`
	Difficulty      Difficulty `json:"difficulty"`
	ReadTimeMinutes int        `json:"readTimeMinutes"`
	Description     string     `json:"description"`

	// Icon is an opaque token the presentation layer maps to an icon.
	Icon string `json:"icon"`
}

// CategoryGroup is one category with its concepts sorted by title.
type CategoryGroup struct {
	Category Category  `json:"category"`
	Emoji    string    `json:"emoji"`
	Color    string    `json:"color"`
	Concepts []Concept `json:"concepts"`
}

// Lookup returns the metadata for a concept id.
func Lookup(id string) (Concept, bool) {
	c, ok := concepts[id]
	return c, ok
}

// IDs returns all catalogue ids in no particular order.
func IDs() []string {
	out := make([]string, 0, len(concepts))
	for id := range concepts {
		out = append(out, id)
	}
	return out
}

// ByCategory groups the whole catalogue by category, categories in fixed
// display order and concepts within each category sorted by title.
func ByCategory() []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categoryOrder))
	for _, cat := range categoryOrder {
		var members []Concept
		for _, c := range concepts {
			if c.Category == cat {
				members = append(members, c)
			}
		}
		sort.Slice(members, func(i, j int) bool {
			return members[i].Title < members[j].Title
		})
		groups = append(groups, CategoryGroup{
			Category: cat,
			Emoji:    CategoryEmoji(cat),
			Color:    categoryColors[cat],
			Concepts: members,
		})
	}
	return groups
}

// Related returns up to n concepts related to id, never including id
// itself. Same-category concepts come first (at most 2), with the
// remainder backfilled from other categories. The result is empty when id
// is not in the catalogue.
func Related(id string, n int) []Concept {
	current, ok := concepts[id]
	if !ok || n <= 0 {
		return nil
	}

	const sameCategoryLimit = 2

	var same, other []Concept
	for _, c := range sortedConcepts() {
		if c.ID == id {
			continue
		}
		if c.Category == current.Category {
			same = append(same, c)
		} else {
			other = append(other, c)
		}
	}

	if len(same) > sameCategoryLimit {
		same = same[:sameCategoryLimit]
	}

	related := same
	for _, c := range other {
		if len(related) >= n {
			break
		}
		related = append(related, c)
	}
	if len(related) > n {
		related = related[:n]
	}
	return related
}

// sortedConcepts returns all concepts ordered by id so Related is stable
// across calls.
func sortedConcepts() []Concept {
	out := make([]Concept, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CategoryEmoji returns the display glyph for a category.
func CategoryEmoji(cat Category) string {
	if e, ok := categoryEmojis[cat]; ok {
		return e
	}
	return "🎓"
}
