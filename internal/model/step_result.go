package model

// StepResult captures the outcome of one delegated installation step.
type StepResult struct {
	// Success reports whether the step completed its side effect.
	Success bool
	// Message carries the collaborator's error text when the step failed.
	Message string
	// Location identifies the path a successful step wrote to, when any.
	Location string
}

// Ok returns a successful StepResult recording the written location.
func Ok(location string) StepResult {
	return StepResult{Success: true, Location: location}
}

// Fail returns a failed StepResult carrying the collaborator's error text.
func Fail(message string) StepResult {
	return StepResult{Success: false, Message: message}
}
