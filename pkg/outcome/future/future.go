package future

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Future is a write-once container for an Outcome that resolves at most once.
//
// The zero value is not usable; construct a Future via Resolve, Go, or the
// combinators. The result field is written exactly once, before syncChan is
// closed, so it must not be read until syncChan is known to be closed.
type Future[T any] struct {
	syncChan chan struct{}
	res      outcome.Outcome[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{syncChan: make(chan struct{})}
}

func (f *Future[T]) resolve(o outcome.Outcome[T]) {
	f.res = o
	close(f.syncChan)
}

// Resolve returns an already-resolved Future holding o.
func Resolve[T any](o outcome.Outcome[T]) *Future[T] {
	f := newFuture[T]()
	f.resolve(o)
	return f
}

// Go runs fn in its own goroutine and returns a Future that resolves to
// Success on a normal return, or to Failure when fn returns an error or
// panics. Cancellation of fn is the caller's concern: when a cancellation
// signal surfaces as a returned error, it is captured like any other error.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.resolve(outcome.Do(func() (T, error) {
			return fn(ctx)
		}))
	}()
	return f
}

// Done returns a channel that is closed once the Future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.syncChan
}

// Await blocks until the Future resolves or ctx is done. Context cancellation
// surfaces as an ordinary Failure wrapping ctx.Err(); use
// outcome.IsCancellation to special-case it.
func (f *Future[T]) Await(ctx context.Context) outcome.Outcome[T] {
	select {
	case <-f.syncChan:
		return f.res
	case <-ctx.Done():
		return outcome.Failure[T](ctx.Err())
	}
}

// TryGet returns the resolved Outcome without blocking. The second return is
// false while the Future is still pending.
func (f *Future[T]) TryGet() (outcome.Outcome[T], bool) {
	select {
	case <-f.syncChan:
		return f.res, true
	default:
		return outcome.Outcome[T]{}, false
	}
}
