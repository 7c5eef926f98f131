package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kidwise/kidwise/internal/llm"
	"github.com/kidwise/kidwise/internal/logger"
)

func newTestService(provider llm.Provider) *Service {
	return NewService(provider, nil, DefaultConfig(), logger.NewNop())
}

func TestGetConcept_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(wellFormedCompletion))
	svc := newTestService(mock)

	fc, err := svc.GetConcept(context.Background(), "llm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fc.Title != "What is an LLM?" {
		t.Errorf("title = %q", fc.Title)
	}
	if fc.Source != SourceGenerated {
		t.Errorf("source = %q, want generated", fc.Source)
	}
	if fc.CategoryEmoji == "" || fc.DifficultyColor == "" {
		t.Error("display metadata missing")
	}
	assertFullyPopulated(t, fc.Content)
	if len(fc.Content.ComicPanels) != 4 {
		t.Errorf("expected 4 panels, got %d", len(fc.Content.ComicPanels))
	}
	for i, p := range fc.Content.ComicPanels {
		if p.Background == "" {
			t.Errorf("panel %d not decorated", i)
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 generation call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "What is an LLM?") {
		t.Error("prompt does not carry the concept title")
	}
	if req.MaxTokens != 2048 {
		t.Errorf("MaxTokens = %d", req.MaxTokens)
	}
}

func TestGetConcept_FallbackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrUnavailable{Err: errors.New("backend down")},
	})
	svc := newTestService(mock)

	fc, err := svc.GetConcept(context.Background(), "gravity")
	if err != nil {
		t.Fatalf("generation failure must not escape: %v", err)
	}

	if fc.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", fc.Source)
	}
	assertFullyPopulated(t, fc.Content)
	if !strings.Contains(fc.Content.SimpleExplanation, "How Gravity Works") {
		t.Errorf("fallback not interpolated with the title: %q", fc.Content.SimpleExplanation)
	}
}

func TestGetConcept_FallbackOnUnusableCompletion(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("hmm"))
	svc := newTestService(mock)

	fc, err := svc.GetConcept(context.Background(), "dna")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", fc.Source)
	}
	assertFullyPopulated(t, fc.Content)
}

func TestGetConcept_PartialCompletionMerged(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(
		"SIMPLE_EXPLANATION:\nDNA is the recipe book inside every living thing.",
	))
	svc := newTestService(mock)

	fc, err := svc.GetConcept(context.Background(), "dna")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One section parsed, so the result counts as generated, with the
	// remaining fields filled in.
	if fc.Source != SourceGenerated {
		t.Errorf("source = %q, want generated", fc.Source)
	}
	if fc.Content.SimpleExplanation != "DNA is the recipe book inside every living thing." {
		t.Errorf("parsed section lost: %q", fc.Content.SimpleExplanation)
	}
	assertFullyPopulated(t, fc.Content)
}

func TestGetConcept_UnknownID(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newTestService(mock)

	_, err := svc.GetConcept(context.Background(), "time-travel")
	if !errors.Is(err, ErrConceptNotFound) {
		t.Fatalf("expected ErrConceptNotFound, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("unknown id must not reach the provider")
	}
}

func TestAnswerQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse(
		"The sky looks blue because air scatters blue light the most.\n\n" +
			"Imagine sunlight as a bag of bouncy balls where the blue ones bounce everywhere.\n\n" +
			"Astronauts see a black sky because there is no air up there to scatter light!",
	))
	svc := newTestService(mock)

	c, err := svc.AnswerQuestion(context.Background(), "Why is the sky blue?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(c.SimpleExplanation, "The sky looks blue") {
		t.Errorf("simple explanation = %q", c.SimpleExplanation)
	}
	assertFullyPopulated(t, *c)

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "Why is the sky blue?") {
		t.Error("prompt does not carry the question")
	}
}

func TestAnswerQuestion_Empty(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newTestService(mock)

	for _, q := range []string{"", "   ", "\n\t"} {
		if _, err := svc.AnswerQuestion(context.Background(), q); !errors.Is(err, ErrEmptyQuestion) {
			t.Errorf("question %q: expected ErrEmptyQuestion, got %v", q, err)
		}
	}
	if mock.CallCount() != 0 {
		t.Error("blank questions must not reach the provider")
	}
}

func TestAnswerQuestion_FallbackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrTimeout{Err: context.DeadlineExceeded},
	})
	svc := newTestService(mock)

	c, err := svc.AnswerQuestion(context.Background(), "How do magnets work?")
	if err != nil {
		t.Fatalf("generation failure must not escape: %v", err)
	}
	assertFullyPopulated(t, *c)
	if !strings.Contains(c.SimpleExplanation, "How do magnets work?") {
		t.Errorf("fallback not interpolated: %q", c.SimpleExplanation)
	}
}
