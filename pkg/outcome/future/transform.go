package future

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Map awaits f and applies fn to its successful value, resolving the returned
// Future to Success on a normal return and to Failure when fn returns an
// error or panics. A Failure passes through unchanged and fn is never
// invoked. Results are identical to outcome.Map for equivalent functions.
func Map[In, Out any](ctx context.Context, f *Future[In], fn func(context.Context, In) (Out, error)) *Future[Out] {
	next := newFuture[Out]()
	go func() {
		in := f.Await(ctx)
		next.resolve(outcome.AndThen(in, func(v In) outcome.Outcome[Out] {
			return outcome.Do(func() (Out, error) {
				return fn(ctx, v)
			})
		}))
	}()
	return next
}

// AndThen awaits f and applies fn to its successful value, resolving to fn's
// Outcome directly. A Failure passes through unchanged and fn is never
// invoked; a panic raised by fn is captured as a Failure.
func AndThen[In, Out any](ctx context.Context, f *Future[In], fn func(context.Context, In) outcome.Outcome[Out]) *Future[Out] {
	next := newFuture[Out]()
	go func() {
		in := f.Await(ctx)
		next.resolve(outcome.AndThen(in, func(v In) outcome.Outcome[Out] {
			return fn(ctx, v)
		}))
	}()
	return next
}

// Capture returns a wrapper that invokes fn on its own goroutine and converts
// its error or panic into a Failure. It is the suspension-capable counterpart
// of outcome.Capture.
func Capture[In, Out any](fn func(context.Context, In) (Out, error)) func(context.Context, In) *Future[Out] {
	return func(ctx context.Context, in In) *Future[Out] {
		return Go(ctx, func(ctx context.Context) (Out, error) {
			return fn(ctx, in)
		})
	}
}
