package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

type Chain[T any] struct {
	ctx context.Context
	res outcome.Outcome[T]
}

func Start[T any](ctx context.Context, o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: o}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return outcome.Outcome[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.AndThen(c.res, func(v T) outcome.Outcome[T] {
		return onSuccess(c.ctx, v)
	})}
}

// Try composes functions that return (T, error) — like repo calls
func (c Chain[T]) Try(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.AndThen(c.res, func(v T) outcome.Outcome[T] {
		return outcome.Do(func() (T, error) {
			return try(c.ctx, v)
		})
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Map(c.res, func(v T) T {
		return onSuccess(c.ctx, v)
	})}
}

// MapErr transforms the held error, leaving a success untouched
func (c Chain[T]) MapErr(onFailure func(ctx context.Context, err error) error) Chain[T] {
	if !c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.MapErr(c.res, func(err error) error {
		return onFailure(c.ctx, err)
	})}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if c.res.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

func (c Chain[T]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Via switches the chain to a new value type, composing a function that
// returns outcome.Outcome[U]. Type-changing steps cannot be methods, so the
// switch lives at package level.
func Via[T, U any](c Chain[T], onSuccess func(ctx context.Context, t T) outcome.Outcome[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: outcome.AndThen(c.res, func(v T) outcome.Outcome[U] {
		return onSuccess(c.ctx, v)
	})}
}

// Finally collapses the chain to a final value
func Finally[T, U any](c Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Err())
}
