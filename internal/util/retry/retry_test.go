package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithExponentialBackoff(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first attempt succeeds", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		err := WithExponentialBackoff(ctx, func() error {
			attempts++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("fixed-interval lookup succeeds after misses", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		err := WithExponentialBackoff(ctx, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("not listed yet")
			}
			return nil
		},
			WithMaxRetries(9),
			WithInitialDelay(time.Millisecond),
			WithMultiplier(1.0),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("exhausts the attempt budget", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		err := WithExponentialBackoff(ctx, func() error {
			attempts++
			return errors.New("still missing")
		},
			WithMaxRetries(3),
			WithInitialDelay(time.Millisecond),
		)
		require.Error(t, err)
		assert.Equal(t, 4, attempts, "one try plus the configured re-attempts")
		assert.ErrorContains(t, err, "still missing")
	})

	t.Run("fatal error stops immediately", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		transport := errors.New("connection refused")
		err := WithExponentialBackoff(ctx, func() error {
			attempts++
			return Fatal(transport)
		},
			WithMaxRetries(5),
			WithInitialDelay(time.Millisecond),
		)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
		assert.True(t, IsFatal(err))
		assert.ErrorIs(t, err, transport)
	})

	t.Run("cancellation stops between attempts", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(context.Background())
		attempts := 0
		err := WithExponentialBackoff(cancelled, func() error {
			attempts++
			cancel()
			return errors.New("not listed yet")
		},
			WithMaxRetries(5),
			WithInitialDelay(time.Minute),
		)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("delay grows by the multiplier", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		start := time.Now()
		err := WithExponentialBackoff(ctx, func() error {
			attempts++
			return errors.New("still missing")
		},
			WithMaxRetries(2),
			WithInitialDelay(10*time.Millisecond),
			WithMultiplier(2.0),
		)
		require.Error(t, err)
		assert.Equal(t, 3, attempts)
		// 10ms after the first attempt, 20ms after the second.
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})
}

func TestFatal(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Fatal(nil))

	wrapped := Fatal(errors.New("boom"))
	assert.True(t, IsFatal(wrapped))
	assert.False(t, IsFatal(errors.New("boom")))
	assert.False(t, IsFatal(nil))
	assert.Equal(t, "boom", wrapped.Error())
}
