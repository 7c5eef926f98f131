package content

import "math/rand/v2"

// panelGradients are the background style tokens cycled across panels.
var panelGradients = []string{
	"linear-gradient(135deg, #FFE4E1, #E6F3FF)",
	"linear-gradient(135deg, #E6F3FF, #F0FFF0)",
	"linear-gradient(135deg, #F0FFF0, #FFF8DC)",
	"linear-gradient(135deg, #FFF8DC, #F0E68C)",
	"linear-gradient(135deg, #E6E6FA, #FFE4E1)",
}

// panelProps are the decorations a panel may receive.
var panelProps = []Decoration{
	{Glyph: "⭐", X: "10%", Y: "20%", Size: "1.5rem"},
	{Glyph: "✨", X: "80%", Y: "15%", Size: "1.2rem"},
	{Glyph: "🌟", X: "15%", Y: "70%", Size: "1.3rem"},
	{Glyph: "💫", X: "85%", Y: "75%", Size: "1.4rem"},
}

// Styler assigns decorative backgrounds and props to comic panels.
// Styling is cosmetic: parsing correctness never depends on it, and a
// nil Styler decorates deterministically so tests can pin output.
type Styler struct {
	rnd *rand.Rand
}

// NewStyler returns a seeded Styler. The same seed produces the same
// decoration sequence.
func NewStyler(seed uint64) *Styler {
	return &Styler{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// Decorate fills Background and Decorations on panels that lack them.
func (s *Styler) Decorate(panels []ComicPanel) {
	for i := range panels {
		if panels[i].Background == "" {
			panels[i].Background = s.background(i)
		}
		if panels[i].Decorations == nil {
			panels[i].Decorations = s.decorations()
		}
	}
}

func (s *Styler) background(i int) string {
	if s == nil || s.rnd == nil {
		return panelGradients[i%len(panelGradients)]
	}
	return panelGradients[s.rnd.IntN(len(panelGradients))]
}

// decorations returns 0-2 props, or none for the nil Styler.
func (s *Styler) decorations() []Decoration {
	if s == nil || s.rnd == nil {
		return []Decoration{}
	}
	n := s.rnd.IntN(3)
	props := make([]Decoration, len(panelProps))
	copy(props, panelProps)
	s.rnd.Shuffle(len(props), func(i, j int) {
		props[i], props[j] = props[j], props[i]
	})
	return props[:n]
}
