package content

import (
	"context"
	"errors"
	"strings"

	"github.com/kidwise/kidwise/internal/catalog"
	"github.com/kidwise/kidwise/internal/llm"
	"github.com/kidwise/kidwise/internal/logger"
)

// ErrConceptNotFound is returned when an id is not in the catalogue.
var ErrConceptNotFound = errors.New("concept not found")

// ErrEmptyQuestion is returned for a blank or whitespace-only question.
var ErrEmptyQuestion = errors.New("question is empty")

// Config controls generation behavior for both content flows.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Service orchestrates prompt building, generation, parsing, and
// fallback. It is the only entry point the presentation layer uses for
// content; generation failures never escape it.
type Service struct {
	provider llm.Provider
	styler   *Styler
	cfg      Config
	log      *logger.Logger
}

// NewService creates a content service. styler may be nil for
// deterministic decoration.
func NewService(provider llm.Provider, styler *Styler, cfg Config, log *logger.Logger) *Service {
	return &Service{provider: provider, styler: styler, cfg: cfg, log: log}
}

// GetConcept produces the full page content for a catalogued concept.
// Unknown ids fail with ErrConceptNotFound; every other failure mode
// degrades to fallback content, so the returned FullConcept always has
// every content field populated.
func (s *Service) GetConcept(ctx context.Context, id string) (*FullConcept, error) {
	meta, ok := catalog.Lookup(id)
	if !ok {
		return nil, ErrConceptNotFound
	}

	ctx = llm.WithPurpose(ctx, "concept-explain")
	prompt := BuildConceptPrompt(meta.Title, string(meta.Category))

	c, source := s.generate(ctx, conceptSystemPrompt, prompt, meta.Title, Parse)
	s.styler.Decorate(c.ComicPanels)

	return &FullConcept{
		Concept:         meta,
		CategoryEmoji:   catalog.CategoryEmoji(meta.Category),
		DifficultyColor: catalog.DifficultyColor(meta.Difficulty),
		Content:         c,
		Source:          source,
	}, nil
}

// AnswerQuestion produces content for an arbitrary free-text question.
// It fails only when the question is blank.
func (s *Service) AnswerQuestion(ctx context.Context, question string) (*Content, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	ctx = llm.WithPurpose(ctx, "ask-anything")
	prompt := BuildQuestionPrompt(question)

	c, _ := s.generate(ctx, questionSystemPrompt, prompt, question, ParseLoose)
	s.styler.Decorate(c.ComicPanels)

	return &c, nil
}

// generate runs one LLM round trip and merges the parsed result with
// fallback content, field by field. The returned Source is fallback when
// generation failed or the parser extracted nothing.
func (s *Service) generate(ctx context.Context, system, prompt, topic string, parse func(string) Content) (Content, Source) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.log.Warn("generation failed, serving fallback content",
			"topic", topic, "error", err)
		return Fallback(topic), SourceFallback
	}

	c := parse(string(resp.Content))
	source := SourceGenerated
	if c.IsEmpty() {
		s.log.Warn("completion had no usable sections, serving fallback content",
			"topic", topic, "model", resp.Model)
		source = SourceFallback
	}
	Fill(&c, topic)

	return c, source
}
