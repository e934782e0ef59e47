// Package errors provides the error taxonomy used throughout galactic.
//
// It re-exports github.com/pkg/errors, so wrapped errors carry a stack trace,
// and defines the sentinel errors every package reports against:
//
//	ErrTypeMismatch  an operand or a declaration has an unacceptable shape or type
//	ErrConversion    a value could not be coerced into an attribute type
//	ErrNotFound      an attribute name or an individual identifier does not exist
//	ErrInvariant     the operation would break the model/population consistency
//	ErrValue         a domain-specific value is out of range (unknown category item...)
//
// Check errors with Is:
//
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
package errors

import (
	pkg "github.com/pkg/errors"
)

// Core error creation and wrapping
var (
	New          = pkg.New
	Errorf       = pkg.Errorf
	Wrap         = pkg.Wrap
	Wrapf        = pkg.Wrapf
	WithStack    = pkg.WithStack
	WithMessage  = pkg.WithMessage
	WithMessagef = pkg.WithMessagef
	Cause        = pkg.Cause
)

// Error inspection
var (
	Is     = pkg.Is
	As     = pkg.As
	Unwrap = pkg.Unwrap
)

var (
	// ErrTypeMismatch indicates an operand or declaration of the wrong type.
	ErrTypeMismatch = New("type mismatch")

	// ErrConversion indicates a value that does not correspond to a type.
	ErrConversion = New("conversion failed")

	// ErrNotFound indicates a missing attribute or individual.
	ErrNotFound = New("not found")

	// ErrInvariant indicates an operation that would leave an individual
	// inconsistent with its model.
	ErrInvariant = New("invariant violation")

	// ErrValue indicates a value outside of its domain.
	ErrValue = New("invalid value")
)

// TypeMismatchf returns an error wrapping ErrTypeMismatch.
func TypeMismatchf(format string, args ...interface{}) error {
	return Wrapf(ErrTypeMismatch, format, args...)
}

// Conversionf returns an error wrapping ErrConversion.
func Conversionf(format string, args ...interface{}) error {
	return Wrapf(ErrConversion, format, args...)
}

// NotFoundf returns an error wrapping ErrNotFound.
func NotFoundf(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// Invariantf returns an error wrapping ErrInvariant.
func Invariantf(format string, args ...interface{}) error {
	return Wrapf(ErrInvariant, format, args...)
}

// Valuef returns an error wrapping ErrValue.
func Valuef(format string, args ...interface{}) error {
	return Wrapf(ErrValue, format, args...)
}

// AsConversion marks err as a conversion failure while keeping it in the
// chain, so both errors.Is(err, ErrConversion) and errors.Is(err, cause)
// hold. A nil err yields nil.
func AsConversion(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if Is(err, ErrConversion) {
		return Wrapf(err, format, args...)
	}
	return &conversionError{cause: Wrapf(err, format, args...)}
}

type conversionError struct {
	cause error
}

func (e *conversionError) Error() string { return e.cause.Error() }
func (e *conversionError) Unwrap() error { return e.cause }

// Is reports conversion errors as ErrConversion in addition to their cause.
func (e *conversionError) Is(target error) bool { return target == ErrConversion }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsConversion reports whether err is or wraps ErrConversion.
func IsConversion(err error) bool {
	return err != nil && Is(err, ErrConversion)
}
