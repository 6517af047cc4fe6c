// Package feedback records human accept/reject signals against previously
// computed matches. Records are an immutable signal log: there is no update
// or delete path.
package feedback

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Store is the append-only persistence the service writes to.
type Store interface {
	InsertMatchFeedback(ctx context.Context, fb types.MatchFeedback) error
}

// Service validates and records match feedback.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a feedback Service.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// RecordFeedback validates the request and appends a feedback record.
// The score range is inclusive on both ends: 0 and 1 are accepted.
func (s *Service) RecordFeedback(ctx context.Context, req types.RecordFeedbackRequest) (*types.MatchFeedback, error) {
	if err := req.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "MatchID":
				return nil, &MissingRequiredFieldError{Field: "match_id"}
			case "FeedbackScore":
				return nil, &MissingRequiredFieldError{Field: "feedback_score"}
			}
		}
		return nil, err
	}

	matchID, err := uuid.Parse(req.MatchID)
	if err != nil {
		return nil, &MissingRequiredFieldError{Field: "match_id", Reason: "must be a valid UUID"}
	}

	score := *req.FeedbackScore
	if score < 0 || score > 1 {
		return nil, &InvalidFeedbackScoreError{Score: score}
	}

	fb := types.MatchFeedback{
		ID:            uuid.New(),
		MatchID:       matchID,
		FeedbackScore: score,
		Comments:      req.Comments,
	}

	if err := s.store.InsertMatchFeedback(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.Debug("match feedback recorded",
		zap.String("match_id", matchID.String()),
		zap.Float64("score", score))

	return &fb, nil
}
