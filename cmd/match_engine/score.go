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
)

var (
	scoreJobID       string
	scoreCandidateID string
	scoreDebug       bool
	scoreVerbose     bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the match score for a job/candidate pair",
	Long:  `Fetch a job posting and a candidate profile from the database, compute the full component breakdown and print it as JSON.`,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreJobID, "job-id", "", "Job posting UUID (required)")
	scoreCmd.Flags().StringVar(&scoreCandidateID, "candidate-id", "", "Candidate UUID (required)")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Enable debug logging")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted breakdown instead of JSON")
	_ = scoreCmd.MarkFlagRequired("job-id")
	_ = scoreCmd.MarkFlagRequired("candidate-id")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	jobID, err := uuid.Parse(scoreJobID)
	if err != nil {
		return fmt.Errorf("invalid --job-id: %w", err)
	}
	candidateID, err := uuid.Parse(scoreCandidateID)
	if err != nil {
		return fmt.Errorf("invalid --candidate-id: %w", err)
	}

	cfg := &config.Config{}
	cfg.FromEnv()
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("%s environment variable is required", config.EnvDatabaseURL)
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("%s environment variable is required", config.EnvAPIKey)
	}

	log, err := logger.New(false, scoreDebug)
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

	job, err := database.GetJobPosting(ctx, jobID)
	if err != nil {
		return err
	}
	candidate, err := database.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return err
	}

	result := matching.NewScorer(client, analytics.NopSink{}, log).Score(ctx, job, candidate)

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(&result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
