package pipe

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Source lifts values into a channel of successful Outcomes. The channel is
// closed once all values are sent or ctx is done.
func Source[T any](ctx context.Context, values ...T) <-chan outcome.Outcome[T] {
	out := make(chan outcome.Outcome[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- outcome.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect gathers a channel into a slice, stopping at channel close or ctx
// cancellation.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first value read from in, or def when the channel closes
// empty or ctx is done.
func First[T any](ctx context.Context, in <-chan T, def T) T {
	select {
	case v, ok := <-in:
		if !ok {
			return def
		}
		return v
	case <-ctx.Done():
		return def
	}
}

// Finally reduces a stream of Outcomes to plain values via per-branch
// handlers.
func Finally[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case r, ok := <-in:
				if !ok {
					return
				}

				var v Out
				if r.IsSuccess() {
					v = onSuccess(ctx, r.Value())
				} else {
					v = onFailure(ctx, r.Err())
				}

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
