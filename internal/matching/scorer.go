// Package matching computes the composite 0-100 match score between a job
// posting and a candidate profile from five weighted components.
package matching

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/analytics"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Scorer scores (job, candidate) pairs. It is stateless across calls; the
// model client and the analytics sink are the only external touchpoints.
type Scorer struct {
	client  llm.Client
	sink    analytics.Sink
	logger  *zap.Logger
	weights types.MatchWeights
}

// NewScorer creates a Scorer. client may be nil, in which case the semantic
// component scores the neutral default. sink may be nil to disable the
// training side channel.
func NewScorer(client llm.Client, sink analytics.Sink, logger *zap.Logger) *Scorer {
	if sink == nil {
		sink = analytics.NopSink{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{
		client:  client,
		sink:    sink,
		logger:  logger,
		weights: types.DefaultMatchWeights(),
	}
}

// Score computes the full match breakdown for one pair. Deterministic
// component failures cannot happen by construction; the semantic component
// degrades to its neutral default rather than failing the call. A training
// record is appended for every scoring call; a failed append is logged and
// swallowed, never surfaced to the caller.
func (s *Scorer) Score(ctx context.Context, job *types.JobPosting, candidate *types.CandidateProfile) types.MatchResult {
	skills := scoreSkills(job.SkillsRequired, candidate.Skills)
	experience := scoreExperience(candidate.ExperienceYears, job.ExperienceMin, job.ExperienceMax)
	location := scoreLocation(job.Location, candidate.CurrentLocation, candidate.PreferredLocations)
	education := scoreEducation(job.EducationLevel)
	semantic := s.scoreSemantic(ctx, job, candidate)

	total := skills*s.weights.Skills +
		experience*s.weights.Experience +
		semantic*s.weights.Semantic +
		location*s.weights.Location +
		education*s.weights.Education

	result := types.MatchResult{
		TotalScore:      int(math.Round(total)),
		SkillsMatch:     skills,
		ExperienceMatch: experience,
		SemanticMatch:   semantic,
		LocationMatch:   location,
		EducationMatch:  education,
		Weights:         s.weights,
	}

	s.emitTrainingRecord(ctx, job.ID, candidate.ID, result)

	return result
}

func (s *Scorer) emitTrainingRecord(ctx context.Context, jobID, candidateID uuid.UUID, result types.MatchResult) {
	record := analytics.TrainingRecord{
		ID:          uuid.New(),
		RecordType:  analytics.RecordTypeMatchScore,
		JobID:       jobID,
		CandidateID: candidateID,
		Result:      result,
	}
	if err := s.sink.AppendTrainingRecord(ctx, record); err != nil {
		s.logger.Warn("training record write failed",
			zap.String("job_id", jobID.String()),
			zap.String("candidate_id", candidateID.String()),
			zap.Error(err))
	}
}
