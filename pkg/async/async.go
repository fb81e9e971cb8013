package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	val  U
	err  error
	done chan struct{}
}

// Async runs fn in its own goroutine and returns a Future for its result.
// If ctx is already canceled, fn is not called and the future resolves to ctx.Err().
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.val, f.err = fn(ctx, param)
	}()

	return f
}

// Resolved returns an already completed future.
func Resolved[U any](val U, err error) *Future[U] {
	f := &Future[U]{val: val, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the computation completes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.val, f.err
}

// AwaitWithTimeout blocks for at most timeout. On timeout it returns ErrTimeout;
// the computation keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll waits for every future and returns results in input order.
// The error is the first non-nil error in input order; results of failed
// futures hold their zero value.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var firstErr error
	for i, f := range futures {
		val, err := f.Await()
		results[i] = val
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return results, firstErr
}
