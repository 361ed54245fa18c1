// Package errors provides structured error types for the pitch agent.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	ErrNoActiveSession    = errors.New("no active pitch session")
	ErrNoJudgesConfigured = errors.New("no judges configured")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnavailable        = errors.New("service unavailable")
)

// ValidationError reports a malformed business idea or panel spec.
// No session state is created when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// NewValidationError creates a validation error for a named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation returns true if err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GenerationError represents a failure from the text-generation backend.
// Role and Step identify which participant and which point in the round
// failed, so callers can log or retry at a higher layer. The core itself
// never retries.
type GenerationError struct {
	Role       string // "entrepreneur" or the judge's name
	Step       string // "pitch", "judge_round", "reply", "test_connection"
	StatusCode int    // HTTP status from the backend, 0 if transport-level
	Message    string
	Err        error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed for %s (%s): %s: %v", e.Role, e.Step, e.Message, e.Err)
	}
	return fmt.Sprintf("generation failed for %s (%s): %s", e.Role, e.Step, e.Message)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError creates a generation error without a wrapped cause.
func NewGenerationError(role, step string, statusCode int, message string) *GenerationError {
	return &GenerationError{Role: role, Step: step, StatusCode: statusCode, Message: message}
}

// IsGeneration returns true if err is (or wraps) a GenerationError.
func IsGeneration(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
