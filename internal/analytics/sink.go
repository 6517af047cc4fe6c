// Package analytics models the one-way training-data side channel fed by the
// match scorer. Scoring logic emits records and never depends on the write
// succeeding, so it stays fully testable without a live store.
package analytics

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/types"
)

// RecordTypeMatchScore labels records produced by the match scorer.
const RecordTypeMatchScore = "match_score"

// TrainingRecord is one appended analytics event: the scoring input identity
// and the full score breakdown, kept for offline learning.
type TrainingRecord struct {
	ID          uuid.UUID         `json:"id"`
	RecordType  string            `json:"record_type"`
	JobID       uuid.UUID         `json:"job_id"`
	CandidateID uuid.UUID         `json:"candidate_id"`
	Result      types.MatchResult `json:"result"`
}

// Sink is the append-only training-data destination. Implementations must
// treat writes as best-effort; callers log and swallow failures.
type Sink interface {
	AppendTrainingRecord(ctx context.Context, record TrainingRecord) error
}

// NopSink discards every record. Used by the offline CLI commands and tests.
type NopSink struct{}

// AppendTrainingRecord discards the record.
func (NopSink) AppendTrainingRecord(context.Context, TrainingRecord) error { return nil }
