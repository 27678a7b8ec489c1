package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fastConfig = Config{
	MaxAttempts:  5,
	InitialDelay: time.Millisecond,
	MaxDelay:     10 * time.Millisecond,
	Multiplier:   2.0,
}

// run adapts a plain error-returning operation to DoWithResult.
func run(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

func TestDoWithResult_SuccessOnFirstAttempt(t *testing.T) {
	var attempts int32

	err := run(context.Background(), func() error {
		atomic.AddInt32(&attempts, 1)
		return nil
	}, DefaultConfig)

	assert.NoError(t, err)
	assert.Equal(t, int32(1), attempts)
}

func TestDoWithResult_SuccessAfterRetries(t *testing.T) {
	var attempts int32

	err := run(context.Background(), func() error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("temporary")
		}
		return nil
	}, fastConfig)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDoWithResult_MaxAttemptsExceeded(t *testing.T) {
	var attempts int32
	expectedErr := errors.New("persistent")

	err := run(context.Background(), func() error {
		atomic.AddInt32(&attempts, 1)
		return expectedErr
	}, fastConfig.WithMaxAttempts(3))

	assert.Equal(t, expectedErr, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDoWithResult_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	var attempts int32

	err := run(context.Background(), func() error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("fail")
	}, Config{})

	assert.Error(t, err)
	assert.Equal(t, int32(1), attempts)
}

func TestDoWithResult_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var attempts int32
	err := run(ctx, func() error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("temporary")
	}, Config{MaxAttempts: 10, InitialDelay: 50 * time.Millisecond, MaxDelay: 100 * time.Millisecond})

	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Equal(t, int32(1), attempts)
}

func TestDoWithResult_ContextAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var attempts int32
	err := run(ctx, func() error {
		atomic.AddInt32(&attempts, 1)
		return nil
	}, fastConfig)

	assert.Equal(t, context.Canceled, err)
	assert.Zero(t, attempts)
}

func TestDoWithResult_RetryIfPredicate(t *testing.T) {
	var attempts int32
	retryable := errors.New("503")
	fatal := errors.New("403")

	err := run(context.Background(), func() error {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return retryable
		}
		return fatal
	}, fastConfig.WithRetryIf(func(err error) bool { return errors.Is(err, retryable) }))

	assert.Equal(t, fatal, err)
	assert.Equal(t, int32(2), attempts)
}

func TestDoWithResult_NilRetryIfRetriesEverything(t *testing.T) {
	var attempts int32

	err := run(context.Background(), func() error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("bad request")
	}, fastConfig.WithMaxAttempts(3))

	assert.Error(t, err)
	assert.Equal(t, int32(3), attempts)
}

func TestDoWithResult_OnRetryCalledBetweenAttempts(t *testing.T) {
	var seen []int

	_ = run(context.Background(), func() error {
		return errors.New("fail")
	}, fastConfig.WithMaxAttempts(3).WithOnRetry(func(attempt int, err error, wait time.Duration) {
		seen = append(seen, attempt)
		assert.EqualError(t, err, "fail")
		assert.LessOrEqual(t, wait, fastConfig.MaxDelay)
	}))

	assert.Equal(t, []int{1, 2}, seen)
}

func TestDoWithResult_ReturnsLastResult(t *testing.T) {
	var attempts int32

	result, err := DoWithResult(context.Background(), func() (string, error) {
		atomic.AddInt32(&attempts, 1)
		return "partial", errors.New("persistent")
	}, fastConfig.WithMaxAttempts(2))

	assert.Error(t, err)
	assert.Equal(t, "partial", result)
	assert.Equal(t, int32(2), attempts)
}

func TestDoWithResult_WithSlice(t *testing.T) {
	var attempts int32

	ids, err := DoWithResult(context.Background(), func() ([]string, error) {
		if atomic.AddInt32(&attempts, 1) < 2 {
			return nil, errors.New("temporary")
		}
		return []string{"-1456928"}, nil
	}, fastConfig)

	assert.NoError(t, err)
	assert.Equal(t, []string{"-1456928"}, ids)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 10*time.Millisecond, backoff(10*time.Millisecond, time.Second, 0))
	assert.Equal(t, 50*time.Millisecond, backoff(time.Second, 50*time.Millisecond, 0))

	withJitter := backoff(100*time.Millisecond, time.Second, 0.5)
	assert.GreaterOrEqual(t, withJitter, 100*time.Millisecond)
	assert.LessOrEqual(t, withJitter, 150*time.Millisecond)
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, 2, DefaultConfig.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, DefaultConfig.InitialDelay)
	assert.Nil(t, DefaultConfig.RetryIf)
}
