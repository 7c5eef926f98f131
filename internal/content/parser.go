package content

import (
	"fmt"
	"regexp"
	"strings"
)

// blockSplit separates a completion into blocks on blank-line boundaries.
var blockSplit = regexp.MustCompile(`\n\s*\n`)

// panelMarker and factMarker split repeating list items inside a section.
var (
	panelMarker = regexp.MustCompile(`(?i)Panel\s*\d+\s*:`)
	factMarker  = regexp.MustCompile(`(?i)Fact\s*\d+\s*:`)
)

// numberPrefix strips leading "1." / "2)" style numbering from loose lines.
var numberPrefix = regexp.MustCompile(`^\s*\d+\s*[.):]\s*`)

// fieldPatterns matches Key="value" or Key=value sub-fields, quoted or not.
var fieldPatterns = func() map[string]*regexp.Regexp {
	keys := []string{"Character", "Dialogue", "Title", "Description", "Emoji", "Text"}
	m := make(map[string]*regexp.Regexp, len(keys))
	for _, k := range keys {
		m[k] = regexp.MustCompile(`(?i)` + k + `\s*=\s*"?([^"|]+)"?`)
	}
	return m
}()

// Parse extracts whatever it can from a raw completion. Fields the
// backend omitted or mangled stay empty; the orchestrator fills them
// from the fallback generator. Panels and facts that are kept always
// have non-empty sub-fields.
func Parse(text string) Content {
	var c Content

	for _, block := range blockSplit.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		switch {
		case hasLabel(block, labelSimple):
			c.SimpleExplanation = stripLabel(block, labelSimple)

		case hasLabel(block, labelDetailed):
			c.DetailedExplanation = splitParagraphs(stripLabel(block, labelDetailed))

		case hasLabel(block, labelPanels):
			c.ComicPanels = parsePanels(stripLabel(block, labelPanels))

		case hasLabel(block, labelFacts):
			c.FunFacts = parseFacts(stripLabel(block, labelFacts))
		}
	}

	return c
}

// ParseLoose first tries the labeled format, then degrades to a
// positional read: the first few substantial lines become the simple
// answer, the story paragraph, and a fun fact. It may return an empty
// Content when the completion offers nothing usable.
func ParseLoose(text string) Content {
	c := Parse(text)
	if !c.IsEmpty() {
		return c
	}

	var lines []string
	for _, block := range blockSplit.Split(text, -1) {
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(numberPrefix.ReplaceAllString(line, ""))
			if len(line) < 15 || looksLikeLabel(line) {
				continue
			}
			lines = append(lines, line)
			if len(lines) == 3 {
				break
			}
		}
		if len(lines) == 3 {
			break
		}
	}

	if len(lines) > 0 {
		c.SimpleExplanation = lines[0]
	}
	if len(lines) > 1 {
		c.DetailedExplanation = []string{lines[1]}
	}
	if len(lines) > 2 {
		c.FunFacts = []FunFact{{Emoji: "🤓", Text: lines[2]}}
	}

	return c
}

func hasLabel(block, label string) bool {
	return strings.Contains(strings.ToUpper(block), label)
}

// stripLabel removes everything through the label plus any trailing
// punctuation, returning the trimmed section body.
func stripLabel(block, label string) string {
	idx := strings.Index(strings.ToUpper(block), label)
	if idx < 0 {
		return strings.TrimSpace(block)
	}
	rest := block[idx+len(label):]
	rest = strings.TrimLeft(rest, ":.- \t")
	return strings.TrimSpace(rest)
}

func looksLikeLabel(line string) bool {
	up := strings.ToUpper(line)
	for _, label := range []string{labelSimple, labelDetailed, labelPanels, labelFacts} {
		if strings.Contains(up, label) {
			return true
		}
	}
	return false
}

// splitParagraphs splits on the paragraph separator, dropping empties and
// preserving order.
func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, paragraphSeparator) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parsePanels splits a section body on "Panel N:" markers. A fragment
// that does not yield at least four sub-fields is skipped rather than
// kept as a partial panel.
func parsePanels(body string) []ComicPanel {
	var panels []ComicPanel

	for _, fragment := range panelMarker.Split(body, -1) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}

		parts := strings.Split(fragment, "|")
		if len(parts) < 4 {
			continue
		}

		n := len(panels) + 1
		panels = append(panels, ComicPanel{
			Character:   fieldValue(parts[0], "Character", "🤓"),
			Dialogue:    fieldValue(parts[1], "Dialogue", "Let me explain..."),
			Title:       fieldValue(parts[2], "Title", fmt.Sprintf("Step %d", n)),
			Description: fieldValue(parts[3], "Description", "Learning something new!"),
		})
	}

	return panels
}

// parseFacts splits a section body on "Fact N:" markers. Fragments
// without both sub-fields are skipped.
func parseFacts(body string) []FunFact {
	var facts []FunFact

	for _, fragment := range factMarker.Split(body, -1) {
		if strings.TrimSpace(fragment) == "" {
			continue
		}

		parts := strings.Split(fragment, "|")
		if len(parts) < 2 {
			continue
		}

		facts = append(facts, FunFact{
			Emoji: fieldValue(parts[0], "Emoji", "🤓"),
			Text:  fieldValue(parts[1], "Text", "This is fascinating!"),
		})
	}

	return facts
}

// fieldValue extracts a Key="value" sub-field from one pipe-delimited
// part. Extraction failure yields the placeholder, never an empty string.
func fieldValue(part, key, placeholder string) string {
	re, ok := fieldPatterns[key]
	if !ok {
		return placeholder
	}
	m := re.FindStringSubmatch(part)
	if m == nil {
		return placeholder
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return placeholder
	}
	return v
}
