package content

import (
	"fmt"
	"strings"
)

// Section labels the generation backend is instructed to emit. The parser
// matches them case-insensitively.
const (
	labelSimple   = "SIMPLE_EXPLANATION"
	labelDetailed = "DETAILED_EXPLANATION"
	labelPanels   = "COMIC_PANELS"
	labelFacts    = "FUN_FACTS"

	// paragraphSeparator splits the detailed explanation into paragraphs.
	paragraphSeparator = "|||"
)

const conceptSystemPrompt = `You are creating educational content for children aged 6-12. Use simple, child-friendly language, make it engaging and fun, include examples kids can relate to, and keep explanations clear and concise. Respond in plain text, not markdown or JSON.`

// BuildConceptPrompt constructs the fixed-template prompt for a catalogued
// concept. Deterministic for identical input.
func BuildConceptPrompt(title, category string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a comprehensive explanation of %q (%s category) in this EXACT format:\n\n", title, category)

	fmt.Fprintf(&b, "%s:\n", labelSimple)
	b.WriteString("[Write 2-3 sentences explaining the concept in very simple terms that a 6-year-old would understand]\n\n")

	fmt.Fprintf(&b, "%s:\n", labelDetailed)
	fmt.Fprintf(&b, "[Write 3 paragraphs (separated by %s ) that explain the concept in more detail but still kid-friendly. Each paragraph should be 2-3 sentences.]\n\n", paragraphSeparator)

	fmt.Fprintf(&b, "%s:\n", labelPanels)
	fmt.Fprintf(&b, "Panel 1: Character=🤓 | Dialogue=\"Hi! Let's learn about %s!\" | Title=\"Introduction\" | Description=\"Welcome to our learning adventure!\"\n", title)
	b.WriteString("Panel 2: Character=🔍 | Dialogue=\"[Create dialogue explaining a key idea]\" | Title=\"[Create title]\" | Description=\"[Create description]\"\n")
	b.WriteString("Panel 3: Character=💡 | Dialogue=\"[Create dialogue with an example]\" | Title=\"[Create title]\" | Description=\"[Create description]\"\n")
	fmt.Fprintf(&b, "Panel 4: Character=🎉 | Dialogue=\"Now you understand %s!\" | Title=\"Summary\" | Description=\"Great job learning something new!\"\n\n", title)

	fmt.Fprintf(&b, "%s:\n", labelFacts)
	b.WriteString("Fact 1: Emoji=🤯 | Text=[Amazing fact about the concept]\n")
	b.WriteString("Fact 2: Emoji=⚡ | Text=[Interesting detail or surprising information]\n")
	b.WriteString("Fact 3: Emoji=🌟 | Text=[Cool connection to everyday life]\n\n")

	b.WriteString("Remember: make the comic panels tell a story.")

	return b.String()
}

const questionSystemPrompt = `You are explaining to a 6-year-old child. Keep it very simple and fun. Keep the language child-friendly and engaging. Respond in plain text.`

// BuildQuestionPrompt constructs the simpler template used by the
// open-ended "ask anything" flow.
func BuildQuestionPrompt(question string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n\n", question)
	b.WriteString("Please provide your response in these three parts, each as its own paragraph:\n")
	b.WriteString("1. A simple answer (2-3 sentences)\n")
	b.WriteString("2. A fun story or analogy\n")
	b.WriteString("3. One interesting fun fact\n")

	return b.String()
}
