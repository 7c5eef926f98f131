package content

import (
	"strings"
	"testing"
)

const wellFormedCompletion = `SIMPLE_EXPLANATION:
An LLM is like a robot friend that has read millions of books and learned how people talk.

DETAILED_EXPLANATION:
Imagine a friend who read every book in the biggest library in the world. ||| That friend learned patterns in how words fit together, so it can guess what comes next in a sentence. ||| When you ask it something, it uses all those patterns to write an answer just for you.

COMIC_PANELS:
Panel 1: Character=🤓 | Dialogue="Hi! Let's learn about LLMs!" | Title="Introduction" | Description="Welcome to our learning adventure!"
Panel 2: Character=🔍 | Dialogue="It reads millions of books to learn patterns!" | Title="Training" | Description="Learning from lots and lots of text!"
Panel 3: Character=💡 | Dialogue="It's like auto-complete, but much smarter!" | Title="Prediction" | Description="Guessing the best next word!"
Panel 4: Character=🎉 | Dialogue="Now you understand LLMs!" | Title="Summary" | Description="Great job learning something new!"

FUN_FACTS:
Fact 1: Emoji=🤯 | Text=Some LLMs have read more books than a person could in 10,000 lifetimes!
Fact 2: Emoji=⚡ | Text=An LLM doesn't actually understand words, it predicts them one piece at a time!
Fact 3: Emoji=🌟 | Text=The auto-complete on your phone is a tiny cousin of an LLM!`

func TestParse_WellFormed(t *testing.T) {
	c := Parse(wellFormedCompletion)

	if !strings.HasPrefix(c.SimpleExplanation, "An LLM is like a robot friend") {
		t.Errorf("simple explanation = %q", c.SimpleExplanation)
	}

	if len(c.DetailedExplanation) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(c.DetailedExplanation))
	}
	if !strings.HasPrefix(c.DetailedExplanation[0], "Imagine a friend") {
		t.Errorf("first paragraph = %q", c.DetailedExplanation[0])
	}
	for i, p := range c.DetailedExplanation {
		if strings.Contains(p, "|||") {
			t.Errorf("paragraph %d still contains separator: %q", i, p)
		}
	}

	if len(c.ComicPanels) != 4 {
		t.Fatalf("expected 4 panels, got %d", len(c.ComicPanels))
	}
	p2 := c.ComicPanels[1]
	if p2.Character != "🔍" {
		t.Errorf("panel 2 character = %q", p2.Character)
	}
	if p2.Dialogue != "It reads millions of books to learn patterns!" {
		t.Errorf("panel 2 dialogue = %q", p2.Dialogue)
	}
	if p2.Title != "Training" {
		t.Errorf("panel 2 title = %q", p2.Title)
	}
	if p2.Description != "Learning from lots and lots of text!" {
		t.Errorf("panel 2 description = %q", p2.Description)
	}

	if len(c.FunFacts) != 3 {
		t.Fatalf("expected 3 facts, got %d", len(c.FunFacts))
	}
	if c.FunFacts[0].Emoji != "🤯" {
		t.Errorf("fact 1 emoji = %q", c.FunFacts[0].Emoji)
	}
	if !strings.HasPrefix(c.FunFacts[1].Text, "An LLM doesn't actually understand") {
		t.Errorf("fact 2 text = %q", c.FunFacts[1].Text)
	}
}

func TestParse_LabelsCaseInsensitive(t *testing.T) {
	c := Parse("simple_explanation: Gravity pulls things toward the ground.")
	if c.SimpleExplanation != "Gravity pulls things toward the ground." {
		t.Errorf("simple explanation = %q", c.SimpleExplanation)
	}
}

func TestParse_MissingSectionsStayEmpty(t *testing.T) {
	c := Parse("SIMPLE_EXPLANATION:\njust the one section here")

	if c.SimpleExplanation == "" {
		t.Error("expected the simple explanation to be kept")
	}
	if len(c.DetailedExplanation) != 0 || len(c.ComicPanels) != 0 || len(c.FunFacts) != 0 {
		t.Error("missing sections should remain empty")
	}
}

func TestParse_NoLabelsYieldsEmpty(t *testing.T) {
	c := Parse("Here is a nice freeform explanation with no structure at all.")
	if !c.IsEmpty() {
		t.Errorf("expected empty content, got %+v", c)
	}
}

func TestParse_PartialPanelSkipped(t *testing.T) {
	text := `COMIC_PANELS:
Panel 1: Character=🤓 | Dialogue="Only two fields here"
Panel 2: Character=🔍 | Dialogue="All four fields" | Title="Complete" | Description="This one is kept"`

	c := Parse(text)
	if len(c.ComicPanels) != 1 {
		t.Fatalf("expected 1 panel, got %d", len(c.ComicPanels))
	}
	if c.ComicPanels[0].Title != "Complete" {
		t.Errorf("kept the wrong panel: %+v", c.ComicPanels[0])
	}
}

func TestParse_PanelSubFieldDefaults(t *testing.T) {
	// Four pipe-delimited parts, but the Title part is unparseable.
	text := `COMIC_PANELS:
Panel 1: Character=🤓 | Dialogue="Hello" | mangled garbage | Description="Still here"`

	c := Parse(text)
	if len(c.ComicPanels) != 1 {
		t.Fatalf("expected 1 panel, got %d", len(c.ComicPanels))
	}
	p := c.ComicPanels[0]
	if p.Title != "Step 1" {
		t.Errorf("title = %q, want placeholder", p.Title)
	}
	if p.Character == "" || p.Dialogue == "" || p.Description == "" {
		t.Errorf("kept panel has empty sub-fields: %+v", p)
	}
}

func TestParse_PartialFactSkipped(t *testing.T) {
	text := `FUN_FACTS:
Fact 1: Emoji=🤯
Fact 2: Emoji=⚡ | Text=This one survives!`

	c := Parse(text)
	if len(c.FunFacts) != 1 {
		t.Fatalf("expected 1 fact, got %d", len(c.FunFacts))
	}
	if c.FunFacts[0].Text != "This one survives!" {
		t.Errorf("kept the wrong fact: %+v", c.FunFacts[0])
	}
}

func TestParseLoose_PrefersLabels(t *testing.T) {
	c := ParseLoose(wellFormedCompletion)
	if len(c.ComicPanels) != 4 {
		t.Errorf("labeled parse should win, got %d panels", len(c.ComicPanels))
	}
}

func TestParseLoose_Positional(t *testing.T) {
	text := `1. The sky looks blue because sunlight bounces off tiny bits of air.

2) Think of sunlight as a box of crayons, and the air keeps scattering the blue one everywhere.

3. Fun fact: on Mars the sunset looks blue instead of red!`

	c := ParseLoose(text)
	if !strings.HasPrefix(c.SimpleExplanation, "The sky looks blue") {
		t.Errorf("simple explanation = %q", c.SimpleExplanation)
	}
	if len(c.DetailedExplanation) != 1 || !strings.HasPrefix(c.DetailedExplanation[0], "Think of sunlight") {
		t.Errorf("detailed explanation = %v", c.DetailedExplanation)
	}
	if len(c.FunFacts) != 1 || !strings.Contains(c.FunFacts[0].Text, "Mars") {
		t.Errorf("fun facts = %v", c.FunFacts)
	}
	if c.FunFacts[0].Emoji == "" {
		t.Error("positional fact should still get an emoji")
	}
}

func TestParseLoose_NothingUsable(t *testing.T) {
	c := ParseLoose("ok\n\nno\n\nshort")
	if !c.IsEmpty() {
		t.Errorf("expected empty content, got %+v", c)
	}
}
