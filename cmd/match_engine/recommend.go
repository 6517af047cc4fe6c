package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/analytics"
	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/logger"
	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/ranking"
)

var (
	recommendJobID       string
	recommendCandidateID string
	recommendLimit       int
	recommendMinScore    int
	recommendDebug       bool
	recommendVerbose     bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Produce ranked recommendations for a candidate or a job",
	Long: `Rank recent job postings for a candidate, or recent candidates for a job.
Exactly one of --candidate-id or --job-id must be provided.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendJobID, "job-id", "", "Rank candidates for this job posting UUID")
	recommendCmd.Flags().StringVar(&recommendCandidateID, "candidate-id", "", "Rank job postings for this candidate UUID")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 10, "Maximum number of recommendations")
	recommendCmd.Flags().IntVar(&recommendMinScore, "min-score", 0, "Discard matches below this total score")
	recommendCmd.Flags().BoolVar(&recommendDebug, "debug", false, "Enable debug logging")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if (recommendJobID == "") == (recommendCandidateID == "") {
		return fmt.Errorf("exactly one of --job-id or --candidate-id is required")
	}

	cfg := &config.Config{}
	cfg.FromEnv()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("%s environment variable is required", config.EnvDatabaseURL)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("%s environment variable is required", config.EnvAPIKey)
	}

	log, err := logger.New(false, recommendDebug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	scorer := matching.NewScorer(client, analytics.NopSink{}, log)
	ranker := ranking.NewRanker(database, scorer, log)
	opts := ranking.Options{Limit: recommendLimit, MinScore: recommendMinScore}

	var result any
	if recommendCandidateID != "" {
		candidateID, err := uuid.Parse(recommendCandidateID)
		if err != nil {
			return fmt.Errorf("invalid --candidate-id: %w", err)
		}
		recommendations, err := ranker.RankJobsForCandidate(ctx, candidateID, opts)
		if err != nil {
			return err
		}
		if recommendVerbose {
			observability.NewPrinter(os.Stdout).PrintJobRecommendations(recommendations)
			return nil
		}
		result = recommendations
	} else {
		jobID, err := uuid.Parse(recommendJobID)
		if err != nil {
			return fmt.Errorf("invalid --job-id: %w", err)
		}
		recommendations, err := ranker.RankCandidatesForJob(ctx, jobID, opts)
		if err != nil {
			return err
		}
		if recommendVerbose {
			observability.NewPrinter(os.Stdout).PrintCandidateRecommendations(recommendations)
			return nil
		}
		result = recommendations
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
