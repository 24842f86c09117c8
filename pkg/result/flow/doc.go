// Package flow provides a minimal fluent Flow[T] for synchronous
// composition of result.Result[T, error] values.
//
// It keeps the API surface very small:
// - Start/From: create a Flow from a result or a value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Verify: fail with a message when a predicate does not hold
// - Ensure: trigger side effects on success only
// - Finally: reduce to a concrete value via handlers
//
// Flow pins the failure payload to error, which is what pipeline code wants
// at call sites; use package result directly when the payload type differs
// or when a step changes the value type.
package flow
