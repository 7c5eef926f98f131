// Package content turns LLM text completions into a fixed, fully
// populated explanation schema for one concept or question, falling back
// to deterministic placeholder content when generation or parsing fails.
package content

import "github.com/kidwise/kidwise/internal/catalog"

// Content is the generated explanation for one topic. After
// orchestration every field is non-empty.
type Content struct {
	// SimpleExplanation is a 2-3 sentence answer a six-year-old follows.
	SimpleExplanation string `json:"simpleExplanation"`

	// DetailedExplanation is an ordered list of short paragraphs.
	DetailedExplanation []string `json:"detailedExplanation"`

	// ComicPanels is the illustrated four-panel (or placeholder) story.
	ComicPanels []ComicPanel `json:"comicPanels"`

	// FunFacts holds three bite-sized facts about the topic.
	FunFacts []FunFact `json:"funFacts"`
}

// IsEmpty reports whether the parser extracted nothing at all.
func (c Content) IsEmpty() bool {
	return c.SimpleExplanation == "" &&
		len(c.DetailedExplanation) == 0 &&
		len(c.ComicPanels) == 0 &&
		len(c.FunFacts) == 0
}

// ComicPanel is one unit of the illustrated story.
type ComicPanel struct {
	Character   string `json:"character"`
	Dialogue    string `json:"dialogue"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Background is an opaque style token (a gradient the presentation
	// layer renders). Decorative only.
	Background string `json:"background"`

	// Decorations are floating props placed over the panel. Decorative
	// only; may be empty.
	Decorations []Decoration `json:"decorations"`
}

// Decoration is one floating prop on a panel.
type Decoration struct {
	Glyph string `json:"glyph"`
	X     string `json:"x"`
	Y     string `json:"y"`
	Size  string `json:"size"`
}

// FunFact is one emoji-tagged fact.
type FunFact struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// Source records how a result was produced. Generated and fallback
// results share the same Content shape; callers never need to branch
// on this.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// FullConcept is catalogue metadata merged with generated content for
// one concept page. Built fresh per request and never persisted.
type FullConcept struct {
	catalog.Concept

	CategoryEmoji   string  `json:"categoryEmoji"`
	DifficultyColor string  `json:"difficultyColor"`
	Content         Content `json:"content"`
	Source          Source  `json:"source"`
}
