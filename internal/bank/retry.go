package bank

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"net/http"
	"time"
)

// RetryConfig configures retry behavior for transient fetch failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultRetryConfig returns the retry policy used by the CLI.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     4 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryFetcher is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryFetcher struct {
	inner  Fetcher
	config RetryConfig
}

var _ Fetcher = (*RetryFetcher)(nil)

// WithRetry wraps a Fetcher with retry logic.
func WithRetry(f Fetcher, cfg RetryConfig) Fetcher {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryFetcher{inner: f, config: cfg}
}

func (r *RetryFetcher) Fetch(ctx context.Context, courseCode string) (*Bank, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		b, err := r.inner.Fetch(ctx, courseCode)
		if err == nil {
			return b, nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return nil, err
		}

		// Last attempt: don't sleep, just return the error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt)):
		}
	}

	return nil, lastErr
}

// shouldRetry reports whether err is worth another attempt: transport
// failures, 429 and 5xx. Client errors and bad payloads are final.
func shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var invalid *InvalidBankError
	if errors.As(err, &invalid) {
		return false
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		if netErr.StatusCode == 0 {
			return true
		}
		return netErr.StatusCode == http.StatusTooManyRequests || netErr.StatusCode >= 500
	}

	return false
}

// backoff computes the wait duration for the given attempt.
func (r *RetryFetcher) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
