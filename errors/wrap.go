package errors

import (
	goerrors "errors"
)

// Is, As, Unwrap and Join mirror the standard library so callers need a
// single errors import.

func Is(err, target error) bool { return goerrors.Is(err, target) }

func As(err error, target any) bool { return goerrors.As(err, target) }

func Unwrap(err error) error { return goerrors.Unwrap(err) }

// Join discards nil errors; it returns nil when all are nil.
func Join(errs ...error) error { return goerrors.Join(errs...) }
