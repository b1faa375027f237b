package outcome

import "fmt"

// PanicError wraps a panic value that is not itself an error, captured at an
// Outcome boundary.
type PanicError struct {
	v any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("captured panic: %v", e.v)
}

// V returns the original panic value.
func (e *PanicError) V() any {
	return e.v
}

func toError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{v: v}
}

// Do invokes fn immediately, wrapping its value as Success or its error or
// panic as Failure. It adds no retry or logging and does not alter arguments.
func Do[T any](fn func() (T, error)) Outcome[T] {
	return guard(func() Outcome[T] {
		v, err := fn()
		if err != nil {
			return Failure[T](err)
		}
		return Success(v)
	})
}

// Capture0 returns a wrapper around a no-argument fallible function. Calling
// the wrapper invokes fn; a normal return becomes Success, a returned error
// or panic becomes Failure.
func Capture0[Out any](fn func() (Out, error)) func() Outcome[Out] {
	return func() Outcome[Out] {
		return Do(fn)
	}
}

// Capture is the one-argument form of Capture0. Go generics cannot abstract
// over arity, so the adapter comes in fixed arities.
func Capture[In, Out any](fn func(In) (Out, error)) func(In) Outcome[Out] {
	return func(in In) Outcome[Out] {
		return Do(func() (Out, error) {
			return fn(in)
		})
	}
}

// Capture2 is the two-argument form of Capture.
func Capture2[A, B, Out any](fn func(A, B) (Out, error)) func(A, B) Outcome[Out] {
	return func(a A, b B) Outcome[Out] {
		return Do(func() (Out, error) {
			return fn(a, b)
		})
	}
}
