package result

import "github.com/monadlab/monadlab/pkg/maybe"

// Result is an immutable outcome container with exactly two variants:
// Success carrying a value of type T, or Fail carrying a failure payload of
// type E. The payload is opaque to this package; it is never interpreted,
// classified or thrown.
type Result[T, E any] struct {
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, isSuccess: true}
}

func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsSuccess returns true if the operation was successful
func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure returns true if the operation failed
func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success payload, or the zero value of T on failure
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure payload, or the zero value of E on success
func (r Result[T, E]) Err() E {
	return r.err
}

// UnwrapOr returns the success payload, or def on failure
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// Bind applies f to the success payload and returns its Result; a failure
// passes through unchanged without f being invoked.
func Bind[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.isSuccess {
		return f(r.value)
	}
	return Fail[U, E](r.err)
}

// Map transforms the success payload only; a failure passes through
// unchanged. Panics raised by f are not caught.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isSuccess {
		return Success[U, E](f(r.value))
	}
	return Fail[U, E](r.err)
}

// MapErr transforms the failure payload only; a success passes through
// unchanged.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.isSuccess {
		return Success[T, F](r.value)
	}
	return Fail[T, F](f(r.err))
}

// Chain folds Bind over fs in order, stopping at the first failure.
// Functions after the short circuit are never invoked.
func Chain[T, E any](r Result[T, E], fs ...func(T) Result[T, E]) Result[T, E] {
	for _, f := range fs {
		if r.IsFailure() {
			return r
		}
		r = f(r.value)
	}
	return r
}

// FromMaybe is the explicit bridge from the optional-value container:
// Just(v) becomes Success(v), None becomes Fail(errIfNone). There is no
// implicit coercion between the two containers anywhere else.
func FromMaybe[T, E any](m maybe.Maybe[T], errIfNone E) Result[T, E] {
	if m.IsJust() {
		return Success[T, E](m.Value())
	}
	return Fail[T, E](errIfNone)
}

// Finally collapses a Result to a plain value through one of the two
// handlers. Exactly one handler is invoked.
func Finally[T, U, E any](r Result[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
