package domain

import (
	"fmt"
	"strings"
)

// ErrorCode classifies why a run failed.
type ErrorCode string

const (
	ErrCodeInvalidArgument     ErrorCode = "INVALID_ARGUMENT"
	ErrCodeGenerationExhausted ErrorCode = "GENERATION_EXHAUSTED"
	ErrCodeIOFailure           ErrorCode = "IO_FAILURE"
)

// Error is the terminal error of a generation run.
//
// An Error without a message stands for its whole code: any error carrying
// that code matches it under errors.Is. Errors with a message match only
// themselves.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.ToLower(strings.ReplaceAll(string(e.Code), "_", " "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Code == e.Code
}

// NewInvalidArgument returns an INVALID_ARGUMENT error with a formatted message.
func NewInvalidArgument(format string, args ...any) *Error {
	return &Error{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewExhausted returns a GENERATION_EXHAUSTED error with a formatted message.
func NewExhausted(format string, args ...any) *Error {
	return &Error{Code: ErrCodeGenerationExhausted, Message: fmt.Sprintf(format, args...)}
}

// NewIOFailure returns an IO_FAILURE error wrapping cause.
func NewIOFailure(message string, cause error) *Error {
	return &Error{Code: ErrCodeIOFailure, Message: message, Cause: cause}
}

var (
	// Code-wide sentinels.
	ErrInvalidArgument = &Error{Code: ErrCodeInvalidArgument}
	ErrExhausted       = &Error{Code: ErrCodeGenerationExhausted}
	ErrIO              = &Error{Code: ErrCodeIOFailure}

	// Specific causes. Both also match ErrInvalidArgument.
	ErrInvalidCount      = NewInvalidArgument("count must not be negative")
	ErrInvalidVocabulary = NewInvalidArgument("invalid vocabulary")
)
