package outcome

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a successful value or a captured error. The variant is
// fixed at construction and instances are never mutated, so concurrent reads
// need no synchronization.
//
// The zero value is neither Success nor Failure; use IsZero to detect it.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps err. It panics when err is nil: a nil error is a programmer
// error, not a representable failure.
func Failure[T any](err error) Outcome[T] {
	if IsNil(err) {
		panic("outcome: Failure requires a non-nil error")
	}
	return Outcome[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return o.err != nil
}

// IsZero reports whether o is the zero Outcome, which is neither Success nor
// Failure.
func (o Outcome[T]) IsZero() bool {
	return !o.isSuccess && o.err == nil
}

// Value returns the successful value, or the zero value of T on Failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the captured error, or nil on Success.
func (o Outcome[T]) Err() error {
	return o.err
}

// Get returns the value and error as an ordinary Go pair. It is the bridge to
// plain (T, error) call sites.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.err
}

// Unwrap returns the successful value. On Failure it panics with the held
// error; this is the single point where a captured error re-enters normal
// panic propagation.
func (o Outcome[T]) Unwrap() T {
	if o.err != nil {
		panic(o.err)
	}
	return o.value
}

// UnwrapOr returns the successful value, or def on Failure. The held error is
// not consumed; the Outcome stays intact.
func (o Outcome[T]) UnwrapOr(def T) T {
	if o.isSuccess {
		return o.value
	}
	return def
}

// Equal reports variant-and-payload equality. Two Outcomes are equal iff both
// are the same variant and their payloads match: values compare with
// reflect.DeepEqual, errors match when errors.Is holds in either direction or
// the errors are deeply equal. Metadata (Id, CreatedAt) is excluded.
func (o Outcome[T]) Equal(other Outcome[T]) bool {
	if o.isSuccess != other.isSuccess {
		return false
	}
	if o.isSuccess {
		return reflect.DeepEqual(o.value, other.value)
	}
	if o.err == nil || other.err == nil {
		return o.err == nil && other.err == nil
	}
	return errors.Is(o.err, other.err) || errors.Is(other.err, o.err) ||
		reflect.DeepEqual(o.err, other.err)
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[T]) String() string {
	switch {
	case o.isSuccess:
		return fmt.Sprintf("Success(%v)", o.value)
	case o.err != nil:
		return fmt.Sprintf("Failure(%s)", o.err)
	default:
		return "Outcome(zero)"
	}
}
