package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchFeedback is an append-only human signal recorded against a previously
// computed match. It is never updated or deleted.
type MatchFeedback struct {
	ID            uuid.UUID `json:"id"`
	MatchID       uuid.UUID `json:"match_id"`
	FeedbackScore float64   `json:"feedback_score"`
	Comments      string    `json:"feedback_comments"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordFeedbackRequest is the API request to record match feedback.
// FeedbackScore is a pointer so a missing field is distinguishable from 0.
type RecordFeedbackRequest struct {
	MatchID       string   `json:"match_id" validate:"required"`
	FeedbackScore *float64 `json:"feedback_score" validate:"required"`
	Comments      string   `json:"feedback_comments,omitempty"`
}

// Validate validates the RecordFeedbackRequest using the validator.
func (r *RecordFeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
