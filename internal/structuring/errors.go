package structuring

import "fmt"

// APICallError represents a failure calling the text-generation backend.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ModelOutputError represents a model response that failed the schema parse.
// The raw response is attached for diagnostics. The model call is given a
// single attempt, so this error is never retried here.
type ModelOutputError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *ModelOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed model output: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed model output: %s", e.Message)
}

func (e *ModelOutputError) Unwrap() error {
	return e.Cause
}
