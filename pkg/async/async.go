package async

import (
	"context"
	"sync"
	"time"
)

// Future holds the eventual result of a call started by Async.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await blocks until the call finishes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until the call finishes or ctx is done.
// When ctx wins, the call keeps running and ctx.Err() is returned.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits at most timeout and returns ErrTimeout if the call is still running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the call has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done is closed once the result is available.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[U]) settle(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		close(f.done)
	})
}

// Async runs fn in its own goroutine and returns a Future for its result.
// A context that is already canceled settles the Future with ctx.Err()
// without calling fn.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		if err := ctx.Err(); err != nil {
			var zero U
			f.settle(zero, err)
			return
		}

		res, err := fn(ctx, param)
		f.settle(res, err)
	}()

	return f
}

// Settled returns a Future that is already complete with the given result.
func Settled[U any](res U, err error) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	f.settle(res, err)
	return f
}
