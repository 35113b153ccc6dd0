// ABOUTME: Retry utilities for provider calls with exponential backoff
// ABOUTME: Shared by the LLM clients for consistent retry behavior
package util

import (
	"context"
	"math/rand"
	"time"
)

// CalculateBackoff returns exponential backoff with jitter.
// Base delay is doubled each attempt, with random jitter up to 25%.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff <= 0 {
		return 0
	}
	// Cap at 20 seconds; session calls are interactive
	if backoff > 20*time.Second {
		backoff = 20 * time.Second
	}
	// Jitter: -25% to +25% using auto-seeded math/rand
	jitter := time.Duration(rand.Int63n(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}

// Do runs fn up to maxRetries+1 times, sleeping with backoff between
// attempts. It stops early when the context is done and returns the last
// error if every attempt fails.
func Do(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(CalculateBackoff(baseDelay, attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := fn(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
