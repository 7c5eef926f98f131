package content

import (
	"strings"
	"testing"
)

func TestBuildConceptPrompt_Deterministic(t *testing.T) {
	a := BuildConceptPrompt("What is an LLM?", "Technology")
	b := BuildConceptPrompt("What is an LLM?", "Technology")
	if a != b {
		t.Error("identical input must produce identical prompts")
	}
}

func TestBuildConceptPrompt_ContainsAllSections(t *testing.T) {
	p := BuildConceptPrompt("How Gravity Works", "Science")

	for _, want := range []string{
		labelSimple, labelDetailed, labelPanels, labelFacts,
		paragraphSeparator,
		"Panel 1:", "Panel 4:",
		"Fact 1:", "Fact 3:",
		"How Gravity Works", "Science",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildQuestionPrompt(t *testing.T) {
	p := BuildQuestionPrompt("Why is the sky blue?")
	if !strings.Contains(p, "Why is the sky blue?") {
		t.Error("prompt must embed the question")
	}
	if !strings.Contains(p, "fun fact") {
		t.Error("prompt must ask for a fun fact")
	}
	if BuildQuestionPrompt("Why is the sky blue?") != p {
		t.Error("identical input must produce identical prompts")
	}
}
