package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/kidwise/kidwise/internal/logger"
)

func TestNewProvider_MissingKeyFailsBeforeNetwork(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"

	_, err := NewProvider(context.Background(), cfg, logger.NewNop())
	var notConf *ErrNotConfigured
	if !errors.As(err, &notConf) {
		t.Fatalf("expected ErrNotConfigured, got: %v", err)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", p.ModelID())
	}
}

func TestUnconfigured_FailsWithoutNetwork(t *testing.T) {
	p := Unconfigured("gemini")

	_, err := p.Generate(context.Background(), Request{})
	var notConf *ErrNotConfigured
	if !errors.As(err, &notConf) {
		t.Fatalf("expected ErrNotConfigured, got: %v", err)
	}
	if notConf.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", notConf.Provider)
	}
}
