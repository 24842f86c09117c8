// Package result provides Result[T, E], a two-variant container for
// computations that either succeed with a value or fail with a caller-typed
// payload, plus the combinators to route values along the success track.
//
// Key operations:
// - Success/Fail: construct a Result
// - Bind: compose functions that themselves return a Result
// - Map/MapErr: transform the success or the failure payload
// - Chain: fold Bind over a sequence of steps, stopping at the first failure
// - FromMaybe: bridge from maybe.Maybe with an explicit failure payload
// - Finally: collapse to a plain value via success/failure handlers
//
// Failures are returned as values and propagate by short-circuiting; the
// package never panics and never recovers on the caller's behalf. For a
// fluent single-type pipeline surface, see the flow subpackage.
package result
