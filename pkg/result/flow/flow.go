package flow

import (
	"errors"

	"github.com/monadlab/monadlab/pkg/result"
)

// Flow wraps a result.Result[T, error] to enable fluent chaining of
// single-type pipeline steps.
type Flow[T any] struct {
	res result.Result[T, error]
}

// Start creates a new flow from an existing result
func Start[T any](r result.Result[T, error]) Flow[T] {
	return Flow[T]{res: r}
}

// From creates a new flow from a successful value
func From[T any](v T) Flow[T] {
	return Start(result.Success[T, error](v))
}

// Result returns the underlying result
func (f Flow[T]) Result() result.Result[T, error] {
	return f.res
}

// Then composes a function that already returns a result
func (f Flow[T]) Then(onSuccess func(T) result.Result[T, error]) Flow[T] {
	if f.res.IsFailure() {
		return f
	}
	return Flow[T]{res: onSuccess(f.res.Value())}
}

// ThenTry composes a function that returns (T, error), converting a non-nil
// error into a failure
func (f Flow[T]) ThenTry(try func(T) (T, error)) Flow[T] {
	if f.res.IsFailure() {
		return f
	}
	v, err := try(f.res.Value())
	if err != nil {
		return Flow[T]{res: result.Fail[T, error](err)}
	}
	return Flow[T]{res: result.Success[T, error](v)}
}

// Map transforms the successful value to a new value
func (f Flow[T]) Map(onSuccess func(T) T) Flow[T] {
	if f.res.IsFailure() {
		return f
	}
	return Flow[T]{res: result.Success[T, error](onSuccess(f.res.Value()))}
}

// Verify keeps the successful value only when validate holds; otherwise the
// flow fails with an error built from the returned message
func (f Flow[T]) Verify(validate func(T) (valid bool, errMsg string)) Flow[T] {
	if f.res.IsFailure() {
		return f
	}
	if valid, errMsg := validate(f.res.Value()); !valid {
		return Flow[T]{res: result.Fail[T, error](errors.New(errMsg))}
	}
	return f
}

// Ensure triggers a side effect on success without changing the result
func (f Flow[T]) Ensure(onSuccess func(T)) Flow[T] {
	if f.res.IsSuccess() && onSuccess != nil {
		onSuccess(f.res.Value())
	}
	return f
}

// Finally collapses the flow to a final value, delegating to result.Finally
func (f Flow[T]) Finally(onSuccess func(T) T, onFailure func(error) T) T {
	return result.Finally(f.res, onSuccess, onFailure)
}
