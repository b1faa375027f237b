package outcome

// failureFrom carries a non-success Outcome across a type change, preserving
// its payload and metadata.
func failureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// guard runs fn and converts any panic it raises into a Failure. All
// combinators and capture adapters share this boundary.
func guard[T any](fn func() Outcome[T]) (out Outcome[T]) {
	defer func() {
		if v := recover(); v != nil {
			out = Failure[T](toError(v))
		}
	}()
	return fn()
}

// Map applies f to the successful value. A Failure passes through unchanged
// and f is never invoked. A panic raised by f is captured as a Failure.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if !o.isSuccess {
		return failureFrom[T, U](o)
	}
	return guard(func() Outcome[U] {
		return Success(f(o.value))
	})
}

// MapErr applies f to the held error. A Success passes through unchanged and
// f is never invoked. A panic raised by f itself becomes the new Failure. An
// error mapper returning nil keeps the original error.
func MapErr[T any](o Outcome[T], f func(error) error) Outcome[T] {
	if !o.IsFailure() {
		return o
	}
	return guard(func() Outcome[T] {
		mapped := f(o.err)
		if IsNil(mapped) {
			return o
		}
		return Failure[T](mapped)
	})
}

// AndThen applies f to the successful value and returns its Outcome directly.
// A Failure passes through unchanged and f is never invoked. A panic raised
// by f is captured as a Failure.
func AndThen[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if !o.isSuccess {
		return failureFrom[T, U](o)
	}
	return guard(func() Outcome[U] {
		return f(o.value)
	})
}
