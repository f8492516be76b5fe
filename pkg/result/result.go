// Package result provides a success/failure value used to carry operation
// outcomes across layer boundaries without returning bare errors.
package result

import (
	apperrors "github.com/killallgit/podcast-browser/pkg/errors"
)

// Result holds either a value or an *errors.AppError, never both.
type Result[T any] struct {
	value T
	err   *apperrors.AppError
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps an error. Errors that are not AppErrors are converted with
// errors.From so the failure always carries a code.
func Failure[T any](err error) Result[T] {
	appErr := apperrors.From(err)
	if appErr == nil {
		appErr = apperrors.New(apperrors.ErrCodeInternal, "failure without cause")
	}
	return Result[T]{err: appErr}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the value and true on success.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.err == nil
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *apperrors.AppError {
	return r.err
}

// Get unpacks the result into the usual (value, error) pair.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
