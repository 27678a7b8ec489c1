// Package retry runs an operation again with exponential backoff until it
// succeeds, a non-retryable error is returned, or the context is done.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts counts the initial attempt. Values below 1 mean one attempt.
	MaxAttempts int

	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// JitterFactor adds up to JitterFactor*delay of random wait (0.0 to 1.0).
	JitterFactor float64

	// RetryIf reports whether err is worth another attempt.
	// If nil, every error is retried.
	RetryIf func(error) bool

	// OnRetry is called before each wait.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// DefaultConfig is tuned for a remote HTTP API with a per-call timeout.
var DefaultConfig = Config{
	MaxAttempts:  2,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// DoWithResult executes fn with retry logic. On failure the result of the
// last attempt is returned along with its error.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	retryIf := cfg.RetryIf
	if retryIf == nil {
		retryIf = func(error) bool { return true }
	}

	var (
		result  T
		lastErr error
	)
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if !retryIf(lastErr) || attempt == attempts {
			break
		}

		wait := backoff(delay, cfg.MaxDelay, cfg.JitterFactor)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		if cfg.Multiplier > 0 {
			delay = time.Duration(float64(delay) * cfg.Multiplier)
		}
	}

	return result, lastErr
}

func backoff(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	wait := delay
	if jitterFactor > 0 {
		wait += time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	}
	if maxDelay > 0 && wait > maxDelay {
		wait = maxDelay
	}
	return wait
}

func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

func (c Config) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Config {
	c.OnRetry = fn
	return c
}
