package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestGo_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Go(ctx, func(ctx context.Context) (int, error) { return 10, nil })
	out := f.Await(ctx)

	if !out.Equal(outcome.Success(10)) {
		t.Fatalf("expected Success(10), got: %v", out)
	}
}

func TestGo_Error(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")

	out := Go(ctx, func(ctx context.Context) (int, error) { return 0, err }).Await(ctx)
	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected Failure(boom), got: %v", out)
	}
}

func TestGo_PanicCaptured(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("panicked")

	out := Go(ctx, func(ctx context.Context) (int, error) { panic(err) }).Await(ctx)
	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected the panic captured as failure, got: %v", out)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := outcome.Success("ready")

	out := Resolve(in).Await(ctx)
	if !out.Equal(in) {
		t.Fatalf("expected the lifted outcome back, got: %v", out)
	}
}

func TestMap_MatchesBlockingCounterpart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inc := func(v int) int { return v + 1 }

	blocking := outcome.Map(outcome.Success(3), inc)
	suspended := Map(ctx, Resolve(outcome.Success(3)), func(ctx context.Context, v int) (int, error) {
		return inc(v), nil
	}).Await(ctx)

	if !suspended.Equal(blocking) {
		t.Fatalf("async map must match sync map, got: %v vs %v", suspended, blocking)
	}
	if !suspended.Equal(outcome.Success(4)) {
		t.Fatalf("expected Success(4), got: %v", suspended)
	}
}

func TestMap_FailurePassthroughNeverInvokes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	calls := 0

	out := Map(ctx, Resolve(outcome.Failure[int](err)), func(ctx context.Context, v int) (int, error) {
		calls++
		return v, nil
	}).Await(ctx)

	if calls != 0 {
		t.Fatalf("mapper must not run on failure, ran %d times", calls)
	}
	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected failure passthrough, got: %v", out)
	}
}

func TestMap_CapturesFnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("map failed")

	out := Map(ctx, Resolve(outcome.Success(1)), func(ctx context.Context, v int) (int, error) {
		return 0, err
	}).Await(ctx)

	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected Failure(map failed), got: %v", out)
	}
}

func TestAndThen_Composition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := AndThen(ctx, Resolve(outcome.Success(2)), func(ctx context.Context, v int) outcome.Outcome[int] {
		return outcome.Success(v * 3)
	}).Await(ctx)

	if !out.Equal(outcome.Success(6)) {
		t.Fatalf("expected Success(6), got: %v", out)
	}
}

func TestAndThen_FailurePassthroughNeverInvokes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	calls := 0

	out := AndThen(ctx, Resolve(outcome.Failure[int](err)), func(ctx context.Context, v int) outcome.Outcome[string] {
		calls++
		return outcome.Success("never")
	}).Await(ctx)

	if calls != 0 {
		t.Fatalf("fn must not run on failure, ran %d times", calls)
	}
	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected failure passthrough, got: %v", out)
	}
}

func TestCapture_Adapter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("runtime failure")

	f := Capture(func(ctx context.Context, v int) (int, error) {
		if v == 1 {
			panic(boom)
		}
		return v, nil
	})

	if out := f(ctx, 1).Await(ctx); !out.IsFailure() || out.Err() != boom {
		t.Fatalf("expected captured panic for f(1), got: %v", out)
	}
	if out := f(ctx, 0).Await(ctx); !out.Equal(outcome.Success(0)) {
		t.Fatalf("expected Success(0) for f(0), got: %v", out)
	}
}

func TestAwait_Cancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		close(started)
		<-release
		return 1, nil
	})

	<-started
	cancel()
	out := f.Await(ctx)
	close(release)

	if !out.IsFailure() || !outcome.IsCancellation(out.Err()) {
		t.Fatalf("expected a cancellation failure, got: %v", out)
	}
}

func TestTryGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	release := make(chan struct{})
	f := Go(ctx, func(ctx context.Context) (int, error) {
		<-release
		return 5, nil
	})

	if _, ok := f.TryGet(); ok {
		t.Fatalf("TryGet must report pending before resolution")
	}

	close(release)
	<-f.Done()

	out, ok := f.TryGet()
	if !ok || !out.Equal(outcome.Success(5)) {
		t.Fatalf("expected resolved Success(5), got: ok=%v, out=%v", ok, out)
	}
}

func TestDone_ClosesOnResolution(t *testing.T) {
	t.Parallel()
	f := Resolve(outcome.Success(1))

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatalf("Done must be closed for a resolved future")
	}
}
