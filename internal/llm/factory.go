package llm

import (
	"context"
	"fmt"

	"github.com/kidwise/kidwise/internal/logger"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
// A missing credential surfaces as *ErrNotConfigured before any network
// attempt is made.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, log)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// Unconfigured returns a Provider whose Generate always fails with
// ErrNotConfigured, without touching the network. It lets the service
// run on fallback content when no credential is present.
func Unconfigured(provider string) Provider {
	return &unconfiguredProvider{err: &ErrNotConfigured{Provider: provider}}
}

type unconfiguredProvider struct {
	err *ErrNotConfigured
}

func (u *unconfiguredProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, u.err
}

func (u *unconfiguredProvider) ModelID() string {
	return "unconfigured"
}
