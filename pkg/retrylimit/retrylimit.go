// Package retrylimit pairs an adaptive rate limiter with exponential
// backoff retries for outbound HTTP clients. The limiter speeds up
// while requests succeed and backs off when the remote pushes back.
//
// Example:
//
//	lim := retrylimit.NewAdaptiveLimiter(2, 1, 5, 1, 0.5)
//	err := retrylimit.WithRetryMax(ctx, doRequest, lim, 3)
package retrylimit

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// AdaptiveLimiter manages a request rate that adjusts with outcomes:
// up by stepUp on success, multiplied by stepDown on failure. Safe for
// concurrent use.
type AdaptiveLimiter struct {
	mu        sync.Mutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
}

// NewAdaptiveLimiter creates a limiter starting at initial requests per
// second, bounded by [min, max].
func NewAdaptiveLimiter(initial, min, max rate.Limit, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	if initial < 1 {
		initial = 1
	}
	if min < 1 {
		min = 1
	}
	burst := int(initial)
	if burst < 1 {
		burst = 1
	}
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, burst),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return a.limiter.Wait(ctx)
}

// Success nudges the rate up. Increases are suppressed for a short
// window after an error so a single good response doesn't undo a
// backoff.
func (a *AdaptiveLimiter) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastError) > 10*time.Second {
		a.setLimit(a.limiter.Limit() + a.stepUp)
	}
}

// RateLimited cuts the rate after a failure or overload response.
func (a *AdaptiveLimiter) RateLimited() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = time.Now()
	a.setLimit(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// CurrentLimit returns the current requests per second.
func (a *AdaptiveLimiter) CurrentLimit() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return float64(a.limiter.Limit())
}

// setLimit clamps and applies a new rate. Callers hold the mutex.
func (a *AdaptiveLimiter) setLimit(newLimit rate.Limit) {
	if newLimit > a.maxLimit {
		newLimit = a.maxLimit
	} else if newLimit < a.minLimit {
		newLimit = a.minLimit
	}
	if newLimit == a.limiter.Limit() {
		return
	}
	a.limiter.SetLimit(newLimit)
	burst := int(newLimit)
	if burst < 1 {
		burst = 1
	}
	a.limiter.SetBurst(burst)
}

// HTTPError is implemented by errors that carry an HTTP status code.
// Errors without it still retry, just without the 429/5xx treatment.
type HTTPError interface {
	error
	StatusCode() int
}

// FatalError wraps errors that should stop retries immediately.
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string { return f.Err.Error() }
func (f *FatalError) Unwrap() error { return f.Err }

const (
	initialDelay   = 500 * time.Millisecond
	maxDelay       = 10 * time.Second
	rateLimitDelay = 100 * time.Millisecond
	backoffFactor  = 2.0
)

// WithRetry executes fn with exponential backoff until success, a
// FatalError, context cancellation, or 100 attempts.
func WithRetry(ctx context.Context, fn func() error, lim *AdaptiveLimiter) error {
	return WithRetryMax(ctx, fn, lim, 100)
}

// WithRetryMax executes fn with exponential backoff up to maxAttempts
// times. Rate-limit responses (429) shrink the limiter and retry after
// a short fixed delay instead of the growing backoff.
func WithRetryMax(ctx context.Context, fn func() error, lim *AdaptiveLimiter, maxAttempts int) error {
	if maxAttempts <= 0 {
		maxAttempts = 100
	}

	delay := initialDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			if lim != nil {
				lim.Success()
				if attempt > 1 {
					log.Printf("[Retry] Success after %d attempts. Limiter=%.2f rps",
						attempt, lim.CurrentLimit())
				}
			}
			return nil
		}

		if _, fatal := err.(*FatalError); fatal {
			return err
		}

		if statusCode(err) == http.StatusTooManyRequests {
			if lim != nil {
				lim.RateLimited()
				log.Printf("[Retry] Rate limit (attempt %d). New limit: %.2f rps",
					attempt, lim.CurrentLimit())
			}
			if !sleep(ctx, rateLimitDelay) {
				return ctx.Err()
			}
			continue
		}

		if code := statusCode(err); code >= 500 && code < 600 && lim != nil {
			lim.RateLimited()
		}
		log.Printf("[Retry] Request failed (attempt %d): %v. Sleeping %v",
			attempt, err, delay)

		if !sleep(ctx, withJitter(delay)) {
			return ctx.Err()
		}
		delay = time.Duration(float64(delay) * backoffFactor)
		if delay > maxDelay {
			delay = maxDelay
		}
	}

	return fmt.Errorf("max attempts (%d) exceeded", maxAttempts)
}

func statusCode(err error) int {
	if httpErr, ok := err.(HTTPError); ok {
		return httpErr.StatusCode()
	}
	return 0
}

// withJitter adds 0-25% of delay to spread concurrent retries.
func withJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return delay
	}
	return delay + time.Duration(rand.Int63n(int64(delay/4)))
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
