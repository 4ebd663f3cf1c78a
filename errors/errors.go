package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// Error is a coded error carrying optional context metadata and a cause.
type Error struct {
	// Code classifies the failure.
	Code ErrorCode
	// Message is a human-readable description of the failure.
	Message string
	// Context holds structured metadata such as the rule name or file.
	Context map[string]interface{}
	// Cause is the wrapped error, if any.
	Cause error
}

// New creates an Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a code and message. Returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// WrapWithContext wraps err with a code, message and context metadata.
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, context map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Context: maps.Clone(context), Cause: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
// This lets callers compare against sentinel values built with New.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithContext returns a copy of e with key set in its context.
func (e *Error) WithContext(key string, value interface{}) *Error {
	out := *e
	out.Context = maps.Clone(e.Context)
	if out.Context == nil {
		out.Context = make(map[string]interface{})
	}
	out.Context[key] = value
	return &out
}

// GetCode returns the code of the first *Error in err's chain,
// or CodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// As is a passthrough to the standard library's errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Is is a passthrough to the standard library's errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
