package pipe

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

var ErrCancelled = errors.New("pipeline cancelled")

// Stage processes one Outcome into the next. Stage constructors built on the
// outcome combinators inherit their capture boundary.
type Stage[In, Out any] func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out]

// Handlers configures cancellation behavior for Run workers.
type Handlers struct {
	// DrainRemaining emits a Failure wrapping ErrCancelled for every input
	// left unprocessed after ctx is done, instead of dropping them. The
	// consumer must keep reading until the output channel closes.
	DrainRemaining bool
}

func MapStage[In, Out any](f func(ctx context.Context, v In) Out) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return outcome.Map(in, func(v In) Out {
			return f(ctx, v)
		})
	}
}

func TryStage[In, Out any](f func(ctx context.Context, v In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return outcome.AndThen(in, func(v In) outcome.Outcome[Out] {
			return outcome.Do(func() (Out, error) {
				return f(ctx, v)
			})
		})
	}
}

func AndThenStage[In, Out any](f func(ctx context.Context, v In) outcome.Outcome[Out]) Stage[In, Out] {
	return func(ctx context.Context, in outcome.Outcome[In]) outcome.Outcome[Out] {
		return outcome.AndThen(in, func(v In) outcome.Outcome[Out] {
			return f(ctx, v)
		})
	}
}

func MapErrStage[T any](f func(ctx context.Context, err error) error) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		return outcome.MapErr(in, func(err error) error {
			return f(ctx, err)
		})
	}
}

// TeeStage triggers a side effect on the success branch without changing the
// result.
func TeeStage[T any](f func(ctx context.Context, v T)) Stage[T, T] {
	return func(ctx context.Context, in outcome.Outcome[T]) outcome.Outcome[T] {
		if in.IsSuccess() {
			f(ctx, in.Value())
		}
		return in
	}
}

// Run applies st to every Outcome read from in, using lines parallel workers,
// and closes the output once the input is drained.
func Run[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	st Stage[In, Out], lines int) <-chan outcome.Outcome[Out] {
	return RunWith(ctx, in, st, lines, Handlers{})
}

func RunWith[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	st Stage[In, Out], lines int, h Handlers) <-chan outcome.Outcome[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan outcome.Outcome[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go worker(ctx, in, out, st, h, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func worker[In, Out any](ctx context.Context, in <-chan outcome.Outcome[In],
	out chan<- outcome.Outcome[Out], st Stage[In, Out], h Handlers, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if h.DrainRemaining {
				drain(in, out)
			}
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			pr := st(ctx, r)

			select {
			case out <- pr:
			case <-ctx.Done():
				if h.DrainRemaining {
					out <- pr
					drain(in, out)
				}
				return
			}
		}
	}
}

// drain converts every input left after cancellation into a Failure, so that
// each accepted input yields exactly one output.
func drain[In, Out any](in <-chan outcome.Outcome[In], out chan<- outcome.Outcome[Out]) {
	for range in {
		out <- outcome.Failure[Out](ErrCancelled)
	}
}
