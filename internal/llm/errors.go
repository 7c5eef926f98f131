package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrNotConfigured indicates no API credential is present for the selected
// provider. It is returned before any network attempt is made.
type ErrNotConfigured struct {
	Provider string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s provider is not configured: missing API key", e.Provider)
}

// ErrUnavailable indicates the provider is down, unreachable, or failed in
// a way that could not be classified more specifically.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrTimeout indicates a single generation attempt exceeded its wall-clock
// budget.
type ErrTimeout struct {
	Err error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("LLM request timed out: %v", e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrQuotaExceeded indicates the provider rejected the request for rate or
// quota reasons (429).
type ErrQuotaExceeded struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrQuotaExceeded) Error() string {
	return fmt.Sprintf("quota exceeded (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrQuotaExceeded) Unwrap() error { return e.Err }

// ErrSafetyBlocked indicates the backend refused to generate because its
// safety filters blocked the prompt or the completion.
type ErrSafetyBlocked struct {
	Err error
}

func (e *ErrSafetyBlocked) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation blocked by safety filter: %v", e.Err)
	}
	return "generation blocked by safety filter"
}

func (e *ErrSafetyBlocked) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that is unusable:
// empty text, or JSON that does not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
