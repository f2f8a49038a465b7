package errors

import (
	"fmt"
)

// ValidationError captures a single invalid or missing CLI flag.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotInstalledError indicates the OpenCode host application was not found.
type NotInstalledError struct {
	Hint string
}

// NewNotInstalledError constructs a NotInstalledError with a remediation hint.
func NewNotInstalledError(hint string) error {
	return &NotInstalledError{Hint: hint}
}

func (e *NotInstalledError) Error() string {
	if e == nil {
		return ""
	}
	if e.Hint != "" {
		return fmt.Sprintf("opencode is not installed: %s", e.Hint)
	}
	return "opencode is not installed"
}

// StepError represents a failure reported by a delegated installation step.
// The message is the collaborator's error text, carried verbatim; the
// orchestrator attaches no semantics to it.
type StepError struct {
	Step    string
	Message string
}

// NewStepError constructs a StepError for the given step name.
func NewStepError(step, message string) error {
	return &StepError{Step: step, Message: message}
}

func (e *StepError) Error() string {
	if e == nil {
		return ""
	}
	if e.Step != "" {
		return fmt.Sprintf("step %s failed: %s", e.Step, e.Message)
	}
	return fmt.Sprintf("step failed: %s", e.Message)
}

// NoProvidersError marks the post-condition failure where every step
// succeeded but no provider was enabled in the resulting configuration.
type NoProvidersError struct{}

// NewNoProvidersError constructs a NoProvidersError.
func NewNoProvidersError() error {
	return &NoProvidersError{}
}

func (e *NoProvidersError) Error() string {
	return "no providers configured"
}
