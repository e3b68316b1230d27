package async_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfecthome/site/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns the function result", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 42, func(ctx context.Context, n int) (string, error) {
			time.Sleep(20 * time.Millisecond)
			return fmt.Sprintf("Number: %d", n), nil
		})

		res, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "Number: 42", res)
		assert.True(t, f.IsComplete())
	})

	t.Run("propagates the function error", func(t *testing.T) {
		t.Parallel()

		expected := errors.New("provider rejected the request")
		f := async.Async(context.Background(), "payload", func(ctx context.Context, s string) (int, error) {
			return 0, expected
		})

		res, err := f.Await()
		assert.ErrorIs(t, err, expected)
		assert.Zero(t, res)
	})

	t.Run("does not call fn when the context is already canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := make(chan struct{}, 1)
		f := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
			called <- struct{}{}
			return n, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, called)
	})

	t.Run("is not complete while the call is running", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		f := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
			<-release
			return n, nil
		})

		assert.False(t, f.IsComplete())
		close(release)
		<-f.Done()
		assert.True(t, f.IsComplete())
	})
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	t.Run("returns ctx error when ctx ends first", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)

		f := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
			<-release
			return 1, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		res, err := f.AwaitContext(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Zero(t, res)
		assert.False(t, f.IsComplete())
	})

	t.Run("returns the result when the call finishes first", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 2, func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		})

		res, err := f.AwaitContext(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, res)
	})
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
		<-release
		return n, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
}

func TestSettled(t *testing.T) {
	t.Parallel()

	expected := errors.New("rejected")
	f := async.Settled("", expected)

	assert.True(t, f.IsComplete())
	_, err := f.Await()
	assert.ErrorIs(t, err, expected)

	ok := async.Settled(7, nil)
	res, err := ok.AwaitWithTimeout(time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 7, res)
}
