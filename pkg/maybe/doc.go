// Package maybe provides Maybe[T], a two-variant container for values that
// may be absent, and the combinators to transform it without nil checks.
//
// Key operations:
// - Just/None/Wrap: construct a Maybe (Wrap maps nil-like values to None)
// - Bind: compose functions that themselves return a Maybe
// - Map: transform the payload of a present value
// - Filter: drop a present value that fails a predicate
// - Chain: fold Bind over a sequence of steps, stopping at the first None
// - UnwrapOr: collapse to a plain value with a fallback
//
// All values are immutable; every operation returns a new Maybe. For
// computations that need an error payload on the empty branch, see package
// result and its FromMaybe bridge.
package maybe
