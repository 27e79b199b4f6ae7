package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unified error code across the pipeline.
type ErrorCode string

const (
	// ErrInput marks a stage input missing a required field. Agent-local,
	// never retried.
	ErrInput ErrorCode = "INPUT_ERROR"

	// ErrProvider marks a failed external provider call (network, auth,
	// quota, malformed response). Caught at the agent boundary.
	ErrProvider ErrorCode = "PROVIDER_FAILURE"

	// ErrValidation marks a stage whose provider call succeeded but whose
	// output failed the stage's structural or semantic checks.
	ErrValidation ErrorCode = "VALIDATION_FAILURE"

	// ErrPipelineAborted marks a run aborted because a stage returned no
	// output. Remaining stages of that run are skipped.
	ErrPipelineAborted ErrorCode = "PIPELINE_ABORTED"
)

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Stage    string    `json:"stage,omitempty"`
	Provider string    `json:"provider,omitempty"`
	Cause    error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithStage sets the stage name.
func (e *Error) WithStage(stage string) *Error {
	e.Stage = stage
	return e
}

// WithProvider sets the provider name.
func (e *Error) WithProvider(provider string) *Error {
	e.Provider = provider
	return e
}

// CodeOf extracts the error code from an error, unwrapping as needed.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsInputError reports whether err carries ErrInput.
func IsInputError(err error) bool { return CodeOf(err) == ErrInput }

// IsProviderFailure reports whether err carries ErrProvider.
func IsProviderFailure(err error) bool { return CodeOf(err) == ErrProvider }

// IsValidationFailure reports whether err carries ErrValidation.
func IsValidationFailure(err error) bool { return CodeOf(err) == ErrValidation }
