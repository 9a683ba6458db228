// Package retry re-attempts transient failures with exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Config holds the backoff parameters.
type Config struct {
	// MaxRetries is the number of re-attempts after the first try.
	MaxRetries int

	// InitialDelay is the pause before the first re-attempt.
	InitialDelay time.Duration

	// Multiplier scales the delay after every attempt. 1.0 yields a
	// fixed-interval loop, which is how the droplet lookup uses it.
	Multiplier float64
}

// Option adjusts a Config.
type Option func(*Config)

// WithMaxRetries sets the number of re-attempts after the first try.
func WithMaxRetries(n int) Option {
	return func(c *Config) { c.MaxRetries = n }
}

// WithInitialDelay sets the pause before the first re-attempt.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) { c.InitialDelay = d }
}

// WithMultiplier sets the factor applied to the delay after each attempt.
func WithMultiplier(m float64) Option {
	return func(c *Config) { c.Multiplier = m }
}

// WithExponentialBackoff runs operation until it succeeds, the attempt
// budget is spent, the context ends between attempts, or the operation
// returns an error marked with [Fatal].
func WithExponentialBackoff(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		MaxRetries:   5,
		InitialDelay: time.Second,
		Multiplier:   2.0,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		lastErr = operation()
		if lastErr == nil {
			return nil
		}
		if IsFatal(lastErr) {
			return fmt.Errorf("not retrying: %w", lastErr)
		}
		if attempt == cfg.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("gave up after %d attempts: %w", attempt+1, ctx.Err())
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return fmt.Errorf("still failing after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

// FatalError marks an error as not worth retrying.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }

func (e *FatalError) Unwrap() error { return e.Err }

// Fatal wraps err so the backoff loop stops immediately. A nil err stays
// nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err carries a Fatal marking anywhere in its
// chain.
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
