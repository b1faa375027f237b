package plain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// RunCatching invokes fn and returns its result as an ordinary (T, error)
// pair, converting a panic into the returned error.
func RunCatching[T any](fn func() (T, error)) (T, error) {
	return outcome.Do(fn).Get()
}

// MustGet returns v, or panics with err when err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrZero returns v, or the zero value of T when err is non-nil.
func GetOrZero[T any](v T, err error) T {
	if err != nil {
		var zero T
		return zero
	}
	return v
}

// GetOrDefault returns v, or def when err is non-nil.
func GetOrDefault[T any](v T, err error, def T) T {
	if err != nil {
		return def
	}
	return v
}

// GetOrElse returns v, or the result of f(err) when err is non-nil.
func GetOrElse[T any](v T, err error, f func(err error) T) T {
	if err != nil {
		return f(err)
	}
	return v
}

// GetOrElseCtx is GetOrElse for fallbacks that need a context.
func GetOrElseCtx[T any](ctx context.Context, v T, err error, f func(ctx context.Context, err error) T) T {
	if err != nil {
		return f(ctx, err)
	}
	return v
}

// MapResult applies f to v when err is nil, short-circuiting the error
// otherwise.
func MapResult[T, U any](v T, err error, f func(v T) (U, error)) (U, error) {
	if err != nil {
		var zero U
		return zero, err
	}
	return f(v)
}
