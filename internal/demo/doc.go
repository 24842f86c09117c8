// Package demo holds the executable side of the teaching catalog: the
// pipelines each catalog entry demonstrates, and a Runner that executes a
// pipeline against user input and reports the outcome.
package demo
