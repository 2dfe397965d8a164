package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the request boundary
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindReference
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindReference:
		return "reference"
	case KindDependency:
		return "dependency"
	default:
		return "internal"
	}
}

// Error is the base error for every catalog domain
type Error struct {
	Kind    Kind   // Boundary classification
	Code    string // Stable machine-readable code (e.g. "AUTHOR_NOT_FOUND")
	Message string // Human-readable message
	Details any    // Optional structured details (field errors)
	Err     error  // Underlying error
}

// Error implements error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Code so that copies made by Wrap/WithDetails still satisfy
// errors.Is against the package-level sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a sentinel error
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Wrap returns a copy of e carrying err as its cause
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// WithDetails returns a copy of e carrying structured details
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Validation wraps request validation failures. Field errors produced by
// ozzo-validation are kept as details.
func Validation(err error) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeValidation,
		Message: "Request validation failed",
		Details: err,
		Err:     err,
	}
}

// InvalidRequest reports a malformed body or path parameter
func InvalidRequest(message string) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: message}
}

const CodeValidation = "VALIDATION_ERROR"

// As extracts the *Error from err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the Kind of err, KindInternal for foreign errors
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}
