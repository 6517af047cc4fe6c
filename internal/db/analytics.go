package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/talent-matcher/internal/analytics"
	"github.com/jonathan/talent-matcher/internal/types"
)

// AppendTrainingRecord appends one match-score snapshot to the training data
// table. Implements analytics.Sink; callers treat failures as best-effort.
func (db *DB) AppendTrainingRecord(ctx context.Context, record analytics.TrainingRecord) error {
	resultBytes, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO match_results (id, record_type, job_id, candidate_id, total_score, result)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.RecordType, record.JobID, record.CandidateID,
		record.Result.TotalScore, resultBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to append training record: %w", err)
	}
	return nil
}

// InsertMatchFeedback appends one feedback record. There is no update or
// delete statement for match_feedback anywhere in this package.
func (db *DB) InsertMatchFeedback(ctx context.Context, fb types.MatchFeedback) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO match_feedback (id, match_id, feedback_score, feedback_comments)
		 VALUES ($1, $2, $3, $4)`,
		fb.ID, fb.MatchID, fb.FeedbackScore, fb.Comments,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match feedback: %w", err)
	}
	return nil
}
