package content

import "fmt"

// Fallback returns fully populated placeholder content for a topic.
// Pure: the same topic always yields the same text, so the output
// schema is guaranteed without any generation backend at all.
func Fallback(topic string) Content {
	var c Content
	Fill(&c, topic)
	return c
}

// Fill populates every still-empty field of c with topic-interpolated
// placeholder content. Fields the parser managed to extract are left
// untouched.
func Fill(c *Content, topic string) {
	if c.SimpleExplanation == "" {
		c.SimpleExplanation = fmt.Sprintf("%s is a really interesting topic! Let me explain it in a way that's easy to understand.", topic)
	}

	if len(c.DetailedExplanation) == 0 {
		c.DetailedExplanation = []string{
			"This concept is all around us in daily life, and understanding it helps us make sense of many things we see and experience.",
			"There are several important parts to this topic, and each one connects to the others in interesting ways that we can explore together.",
			"By learning about this, we can better understand how our world works and maybe even discover some surprising connections to other things we know!",
		}
	}

	if len(c.ComicPanels) == 0 {
		c.ComicPanels = []ComicPanel{
			{
				Character:   "🤓",
				Dialogue:    fmt.Sprintf("Let's learn about %s together!", topic),
				Title:       "Welcome",
				Description: "Starting our learning journey!",
			},
			{
				Character:   "🔍",
				Dialogue:    "Here's how it works...",
				Title:       "Discovery",
				Description: "Exploring the concept step by step!",
			},
			{
				Character:   "💡",
				Dialogue:    "Now I understand!",
				Title:       "Understanding",
				Description: "Everything is becoming clear!",
			},
		}
	}

	if len(c.FunFacts) == 0 {
		c.FunFacts = []FunFact{
			{Emoji: "🤯", Text: "This concept has some truly amazing aspects that might surprise you!"},
			{Emoji: "⚡", Text: "There are fascinating details about this topic that connect to many other things!"},
			{Emoji: "🌟", Text: "Understanding this opens up a whole new way of seeing the world around us!"},
		}
	}
}
