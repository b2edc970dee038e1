// Package result provides the two-track value returned by every parser.
package result

import (
	"github.com/lamali292/one-piece-api/internal/problem"
)

// Result holds exactly one of a success value or a problem.
// The zero value is a failure with an empty problem.
type Result[T any] struct {
	value   T
	problem problem.Problem
	ok      bool
}

// Success wraps v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure wraps p.
func Failure[T any](p problem.Problem) Result[T] {
	return Result[T]{problem: p}
}

// Get returns the success value.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Problem returns the failure.
func (r Result[T]) Problem() (problem.Problem, bool) {
	return r.problem, !r.ok
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// OrDefault returns the success value or def.
func (r Result[T]) OrDefault(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// OrElse returns the success value or computes one from the problem.
func (r Result[T]) OrElse(fn func(problem.Problem) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.problem)
}

// IfFailure runs fn with the problem when r failed.
func (r Result[T]) IfFailure(fn func(problem.Problem)) Result[T] {
	if !r.ok {
		fn(r.problem)
	}
	return r
}

// IfSuccess runs fn with the value when r succeeded.
func (r Result[T]) IfSuccess(fn func(T)) Result[T] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// Unwrap converts r into Go's (value, error) convention.
func (r Result[T]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	return r.value, r.problem
}

// Map transforms a success value and passes failures through.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Failure[U](r.problem)
	}
	return Success(fn(r.value))
}

// AndThen chains a dependent fallible step.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Failure[U](r.problem)
	}
	return fn(r.value)
}

// Track returns the success value, or records the problem in c and reports
// false. It lets a parser attempt every field before checking c.
func Track[T any](r Result[T], c *problem.Collector) (T, bool) {
	if !r.ok {
		c.Add(r.problem)
	}
	return r.value, r.ok
}

// Collect succeeds with every value when all results succeed, otherwise it
// fails with the combination of every problem.
func Collect[T any](rs []Result[T]) Result[[]T] {
	var c problem.Collector
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if v, ok := Track(r, &c); ok {
			values = append(values, v)
		}
	}
	if p, failed := c.Problem(); failed {
		return Failure[[]T](p)
	}
	return Success(values)
}
