// Package errors provides structured error types for csizer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending spec, a field path, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidSpec).
//		Spec("cxi").
//		Detail("unknown field kind %q", 'x').
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidSpec("cxi", 1, 'x')
//	err := errors.OutOfBounds(errors.PhaseLayout, nil, 5, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
