// Package ranking applies the match scorer across a bounded candidate or job
// pool and returns score-sorted, size-bounded recommendation lists.
package ranking

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Store is the read-only slice of the profile store the ranker consumes.
type Store interface {
	GetJobPosting(ctx context.Context, jobID uuid.UUID) (*types.JobPosting, error)
	GetCandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error)
	// ListRecentJobPostings returns the most recent postings, capped at limit.
	ListRecentJobPostings(ctx context.Context, limit int) ([]types.JobPosting, error)
	// ListRecentCandidates returns the most recently active profiles, capped at limit.
	ListRecentCandidates(ctx context.Context, limit int) ([]types.CandidateProfile, error)
}

// DefaultPoolSize caps how many pool members a single ranking call scores.
// A fixed cap bounds model-call cost; it is not the full corpus.
const DefaultPoolSize = 50

// defaultScoreWorkers bounds the parallel semantic calls per ranking request.
const defaultScoreWorkers = 4

// Options tune a single ranking call.
type Options struct {
	// Limit truncates the result list. Zero means no truncation beyond the pool cap.
	Limit int
	// MinScore discards matches below this total score.
	MinScore int
}

// Ranker produces ranked recommendation lists.
type Ranker struct {
	store    Store
	scorer   *matching.Scorer
	logger   *zap.Logger
	poolSize int
	workers  int
}

// NewRanker creates a Ranker over the given store and scorer.
func NewRanker(store Store, scorer *matching.Scorer, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{
		store:    store,
		scorer:   scorer,
		logger:   logger,
		poolSize: DefaultPoolSize,
		workers:  defaultScoreWorkers,
	}
}

// RankJobsForCandidate scores the recent-postings pool against one candidate
// and returns the matches clearing opts.MinScore, sorted descending by total
// score. An empty list is a valid result, not an error.
func (r *Ranker) RankJobsForCandidate(ctx context.Context, candidateID uuid.UUID, opts Options) ([]types.JobRecommendation, error) {
	candidate, err := r.store.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	pool, err := r.store.ListRecentJobPostings(ctx, r.poolSize)
	if err != nil {
		return nil, err
	}

	scored := r.scorePool(ctx, len(pool), func(i int) types.MatchResult {
		return r.scorer.Score(ctx, &pool[i], candidate)
	})

	recommendations := make([]types.JobRecommendation, 0, len(scored))
	for i, result := range scored {
		if result == nil || result.TotalScore < opts.MinScore {
			continue
		}
		recommendations = append(recommendations, types.JobRecommendation{
			Job:          pool[i],
			MatchScore:   result.TotalScore,
			MatchDetails: *result,
		})
	}

	// Stable sort keeps pool order for equal scores.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if opts.Limit > 0 && len(recommendations) > opts.Limit {
		recommendations = recommendations[:opts.Limit]
	}
	return recommendations, nil
}

// RankCandidatesForJob is the symmetric operation: it scores the
// recently-active-candidates pool against one job posting.
func (r *Ranker) RankCandidatesForJob(ctx context.Context, jobID uuid.UUID, opts Options) ([]types.CandidateRecommendation, error) {
	job, err := r.store.GetJobPosting(ctx, jobID)
	if err != nil {
		return nil, err
	}

	pool, err := r.store.ListRecentCandidates(ctx, r.poolSize)
	if err != nil {
		return nil, err
	}

	scored := r.scorePool(ctx, len(pool), func(i int) types.MatchResult {
		return r.scorer.Score(ctx, job, &pool[i])
	})

	recommendations := make([]types.CandidateRecommendation, 0, len(scored))
	for i, result := range scored {
		if result == nil || result.TotalScore < opts.MinScore {
			continue
		}
		recommendations = append(recommendations, types.CandidateRecommendation{
			Candidate:    pool[i],
			MatchScore:   result.TotalScore,
			MatchDetails: *result,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	if opts.Limit > 0 && len(recommendations) > opts.Limit {
		recommendations = recommendations[:opts.Limit]
	}
	return recommendations, nil
}

// scorePool scores each pool member with a bounded worker count. Results are
// written into an index-addressed slice so pool order is preserved regardless
// of completion order. A panicking or malformed member only clears its own
// slot; the rest of the pool still ranks.
func (r *Ranker) scorePool(ctx context.Context, size int, score func(i int) types.MatchResult) []*types.MatchResult {
	results := make([]*types.MatchResult, size)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := 0; i < size; i++ {
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.Warn("pool member scoring failed, skipping",
						zap.Int("pool_index", i),
						zap.Any("panic", rec))
				}
			}()
			if gctx.Err() != nil {
				return nil
			}
			result := score(i)
			results[i] = &result
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	return results
}
