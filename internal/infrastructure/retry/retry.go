// Package retry implements exponential backoff with jitter for upstream calls.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config controls backoff behavior for a retried operation.
type Config struct {
	// Attempts is the total number of tries, including the first one.
	Attempts int

	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the wait between retries.
	MaxDelay time.Duration

	// Multiplier grows the delay after each failed attempt.
	Multiplier float64

	// Jitter adds up to this fraction of the delay as random noise.
	Jitter float64

	// RetryIf decides whether an error is worth retrying.
	// A nil predicate retries every error.
	RetryIf func(error) bool
}

// Upstream is tuned for the external flight data providers: three tries
// starting at 200ms, doubling up to 5s.
var Upstream = Config{
	Attempts:     3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	Jitter:       0.2,
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// Do runs fn until it succeeds, the attempts are exhausted, or the context
// is canceled. The last error is returned when all attempts fail.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult is the generic form of Do for functions that return a value.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}
		if attempt == cfg.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(jittered(delay, cfg.MaxDelay, cfg.Jitter)):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

func jittered(delay, maxDelay time.Duration, jitter float64) time.Duration {
	sleep := delay + time.Duration(rand.Float64()*float64(delay)*jitter)
	if sleep > maxDelay {
		sleep = maxDelay
	}
	return sleep
}

type permanentError struct {
	err error
}

func (p *permanentError) Error() string {
	if p.err == nil {
		return "permanent error"
	}
	return p.err.Error()
}

func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks an error as not worth retrying, typically a 4xx from an
// upstream that will fail the same way on every attempt.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// SkipPermanent is a RetryIf predicate that stops on permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
