package matching

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/analytics"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/types"
)

// stubClient returns a canned response or error for every Complete call.
type stubClient struct {
	response string
	err      error
	prompts  []string
	mu       sync.Mutex
}

func (s *stubClient) Complete(_ context.Context, prompt string, _ llm.ModelTier, _ llm.Options) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) CompleteJSON(ctx context.Context, prompt string, tier llm.ModelTier, opts llm.Options) (string, error) {
	return s.Complete(ctx, prompt, tier, opts)
}

func (s *stubClient) Close() error { return nil }

// recordingSink captures appended training records.
type recordingSink struct {
	records []analytics.TrainingRecord
	err     error
	mu      sync.Mutex
}

func (r *recordingSink) AppendTrainingRecord(_ context.Context, record analytics.TrainingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, record)
	return nil
}

func testJob() *types.JobPosting {
	return &types.JobPosting{
		ID:             uuid.New(),
		Title:          "Backend Engineer",
		Description:    "Build and operate Go services.",
		SkillsRequired: []string{"go", "postgresql", "docker", "kubernetes"},
		ExperienceMin:  3,
		ExperienceMax:  8,
		Location:       "Austin, TX",
		EducationLevel: "Bachelors",
		Industry:       "Software",
	}
}

func testCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:              uuid.New(),
		Skills:          []string{"Go", "PostgreSQL", "Docker"},
		ExperienceYears: 5,
		CurrentLocation: "Austin, TX",
		CurrentPosition: "Software Engineer",
		Summary:         "Five years building backend services in Go.",
	}
}

func TestScorer_Score_FullBreakdown(t *testing.T) {
	client := &stubClient{response: "50"}
	sink := &recordingSink{}
	scorer := NewScorer(client, sink, nil)

	result := scorer.Score(context.Background(), testJob(), testCandidate())

	// 3 of 4 skills exact: 75. In range experience: 100. Same location: 100.
	// Education required: 75. Semantic stubbed to 50.
	assert.Equal(t, 75.0, result.SkillsMatch)
	assert.Equal(t, 100.0, result.ExperienceMatch)
	assert.Equal(t, 100.0, result.LocationMatch)
	assert.Equal(t, 75.0, result.EducationMatch)
	assert.Equal(t, 50.0, result.SemanticMatch)

	// 75*0.35 + 100*0.25 + 50*0.20 + 100*0.10 + 75*0.10 = 78.75 -> 79
	assert.Equal(t, 79, result.TotalScore)
	assert.Equal(t, types.DefaultMatchWeights(), result.Weights)
}

func TestScorer_Score_TotalIsRoundedWeightedSum(t *testing.T) {
	job := testJob()
	job.SkillsRequired = []string{"go", "postgresql"}
	job.Location = ""
	job.EducationLevel = ""
	candidate := testCandidate()
	candidate.Skills = []string{"go"}
	candidate.ExperienceYears = 2

	scorer := NewScorer(&stubClient{response: "50"}, nil, nil)
	result := scorer.Score(context.Background(), job, candidate)

	// 50*0.35 + 85*0.25 + 50*0.20 + 100*0.10 + 100*0.10 = 68.75 -> 69
	assert.Equal(t, 50.0, result.SkillsMatch)
	assert.Equal(t, 85.0, result.ExperienceMatch)
	assert.Equal(t, 69, result.TotalScore)
}

func TestScorer_Score_NilClientUsesNeutralSemantic(t *testing.T) {
	scorer := NewScorer(nil, nil, nil)
	result := scorer.Score(context.Background(), testJob(), testCandidate())
	assert.Equal(t, 50.0, result.SemanticMatch)
}

func TestScorer_Score_EmitsTrainingRecord(t *testing.T) {
	job := testJob()
	candidate := testCandidate()
	sink := &recordingSink{}
	scorer := NewScorer(&stubClient{response: "80"}, sink, nil)

	result := scorer.Score(context.Background(), job, candidate)

	require.Len(t, sink.records, 1)
	record := sink.records[0]
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.Equal(t, analytics.RecordTypeMatchScore, record.RecordType)
	assert.Equal(t, job.ID, record.JobID)
	assert.Equal(t, candidate.ID, record.CandidateID)
	assert.Equal(t, result, record.Result)
}

func TestScorer_Score_SinkFailureDoesNotSurface(t *testing.T) {
	sink := &recordingSink{err: errors.New("analytics store down")}
	scorer := NewScorer(&stubClient{response: "60"}, sink, nil)

	result := scorer.Score(context.Background(), testJob(), testCandidate())
	assert.Equal(t, 60.0, result.SemanticMatch)
	assert.Greater(t, result.TotalScore, 0)
}

func TestScorer_Score_WeightsSumToOne(t *testing.T) {
	w := types.DefaultMatchWeights()
	sum := w.Skills + w.Experience + w.Semantic + w.Location + w.Education
	assert.InDelta(t, 1.0, sum, 1e-9)
}
