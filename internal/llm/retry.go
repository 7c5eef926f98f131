package llm

import (
	"context"
	"errors"
	"time"
)

// RetryProvider is a decorator that bounds each attempt with a wall-clock
// timeout and retries transient failures a fixed number of times.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with timeout and retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.attempt(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// The caller going away is not a provider failure.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if !r.shouldRetry(err) {
			return nil, err
		}

		// Last attempt. Return the error without sleeping.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.config.Delay
		var quota *ErrQuotaExceeded
		if errors.As(err, &quota) && quota.RetryAfter > 0 {
			wait = quota.RetryAfter
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

// attempt runs a single generation bounded by the per-attempt timeout.
// A blown deadline surfaces as ErrTimeout, not as a context error.
func (r *RetryProvider) attempt(ctx context.Context, req Request) (*Response, error) {
	attemptCtx := ctx
	if r.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, r.config.AttemptTimeout)
		defer cancel()
	}

	resp, err := r.inner.Generate(attemptCtx, req)
	if err == nil {
		return resp, nil
	}

	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, &ErrTimeout{Err: err}
	}
	return nil, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// shouldRetry determines if an error is transient.
func (r *RetryProvider) shouldRetry(err error) bool {
	// An attempt that blew its own deadline is worth another try.
	var timeout *ErrTimeout
	if errors.As(err, &timeout) {
		return true
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Configuration and safety blocks will not resolve by retrying.
	var notConf *ErrNotConfigured
	if errors.As(err, &notConf) {
		return false
	}
	var safety *ErrSafetyBlocked
	if errors.As(err, &safety) {
		return false
	}

	// Timeout, unavailability, quota, and malformed output are all worth
	// one more attempt.
	return true
}
