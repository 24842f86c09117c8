package maybe

import "reflect"

// Maybe is an immutable optional-value container with exactly two variants:
// Just (a value is present) and None (no value).
type Maybe[T any] struct {
	value  T
	isJust bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, isJust: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Wrap builds a Maybe from an arbitrary value. A nil pointer, interface, map,
// slice, func or channel yields None; any other value yields Just, zero
// values included: Wrap(0) and Wrap("") are both present.
//
// The nil rule is a deliberate construction convenience, not a monad law.
// Callers that need a nil pointer to stay present must use Just directly;
// do not "fix" Wrap into requiring explicit wrapping.
func Wrap[T any](v T) Maybe[T] {
	if isNil(v) {
		return None[T]()
	}
	return Just(v)
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	rv := reflect.ValueOf(i)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsJust returns true if a value is present
func (m Maybe[T]) IsJust() bool {
	return m.isJust
}

// IsNone returns true if no value is present
func (m Maybe[T]) IsNone() bool {
	return !m.isJust
}

// Value returns the payload, or the zero value of T for None
func (m Maybe[T]) Value() T {
	return m.value
}

// UnwrapOr returns the payload if present, otherwise def
func (m Maybe[T]) UnwrapOr(def T) T {
	if m.isJust {
		return m.value
	}
	return def
}

// Bind applies f to the payload and returns its Maybe; None passes through
// without f being invoked. f may itself return None to short-circuit.
func Bind[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if m.isJust {
		return f(m.value)
	}
	return None[U]()
}

// Map transforms the payload; None passes through without f being invoked.
// Panics raised by f are not caught.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.isJust {
		return Just(f(m.value))
	}
	return None[U]()
}

// Filter keeps the payload only when pred holds for it
func Filter[T any](m Maybe[T], pred func(T) bool) Maybe[T] {
	if m.isJust && pred(m.value) {
		return m
	}
	return None[T]()
}

// Chain folds Bind over fs in order, stopping at the first None. Functions
// after the short circuit are never invoked.
func Chain[T any](m Maybe[T], fs ...func(T) Maybe[T]) Maybe[T] {
	for _, f := range fs {
		if m.IsNone() {
			return m
		}
		m = f(m.value)
	}
	return m
}
