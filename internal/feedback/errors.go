package feedback

import "fmt"

// InvalidFeedbackScoreError indicates a feedback score outside [0, 1].
// Both boundaries are accepted.
type InvalidFeedbackScoreError struct {
	Score float64
}

func (e *InvalidFeedbackScoreError) Error() string {
	return fmt.Sprintf("feedback score %g is outside [0, 1]", e.Score)
}

// MissingRequiredFieldError indicates a required feedback field is absent or
// unusable.
type MissingRequiredFieldError struct {
	Field  string
	Reason string
}

func (e *MissingRequiredFieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("required field %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("required field %s is missing", e.Field)
}
