// Package errors provides structured errors with codes and key/value context
// for the evolutionary run engine and its collaborators.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCode classifies the failure modes surfaced by this module.
type ErrorCode int

const (
	Unknown ErrorCode = iota

	// InvalidConfig marks a run or experiment configuration rejected at
	// construction time, before any generation runs.
	InvalidConfig

	// InvalidInput marks malformed caller-supplied data other than config,
	// such as an instance with no items.
	InvalidInput

	// ParseFailed marks an unreadable or malformed knapsack instance file.
	ParseFailed

	// StoreFailed marks a results-store failure.
	StoreFailed

	// Canceled marks a run stopped early by context cancellation or a
	// signal. The accompanying result still carries the best found so far.
	Canceled
)

// Fields carries structured context attached to an error.
type Fields map[string]interface{}

// Error is a coded error with optional wrapped cause and context fields.
type Error struct {
	code    ErrorCode
	message string
	cause   error
	fields  Fields
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	if len(e.fields) > 0 {
		b.WriteString(" [")
		for k, v := range e.fields {
			fmt.Fprintf(&b, "%s=%v ", k, v)
		}
		b.WriteString("]")
	}
	return strings.TrimSpace(b.String())
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() ErrorCode { return e.code }

// Fields returns a copy of the error's context fields.
func (e *Error) Fields() Fields {
	out := make(Fields, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// New creates an error with a code and message.
func New(code ErrorCode, message string) error {
	return &Error{code: code, message: message}
}

// Newf creates an error with a code and a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an existing error. Returns nil for a
// nil cause so call sites can wrap unconditionally.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, message: message, cause: err}
}

// WithFields annotates an error with structured context, preserving the code
// and cause when err is already an *Error.
func WithFields(err error, fields Fields) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		merged := make(Fields, len(e.fields)+len(fields))
		for k, v := range e.fields {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}
		return &Error{code: e.code, message: e.message, cause: e.cause, fields: merged}
	}
	return &Error{code: Unknown, message: err.Error(), cause: err, fields: fields}
}

// Is matches errors by code, so errors.Is works against a sentinel made with
// New(code, "").
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// As supports extracting the structured error via errors.As.
func (e *Error) As(target interface{}) bool {
	p, ok := target.(**Error)
	if !ok {
		return false
	}
	*p = e
	return true
}

// Code returns the ErrorCode of err, or Unknown for foreign errors.
func Code(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.code
	}
	return Unknown
}
