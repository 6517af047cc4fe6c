package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/logger"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/structuring"
)

var (
	parseResumeDebug   bool
	parseResumeVerbose bool
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume <file>",
	Short: "Parse a resume file into a structured profile",
	Long:  `Extract text from a PDF, DOCX or TXT resume and structure it via the model, printing the profile as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParseResume,
}

func init() {
	parseResumeCmd.Flags().BoolVar(&parseResumeDebug, "debug", false, "Enable debug logging")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")
	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv(config.EnvAPIKey)
	if apiKey == "" {
		return fmt.Errorf("%s environment variable is required", config.EnvAPIKey)
	}

	fileBytes, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	rawText, err := extraction.ExtractText(fileBytes, args[0])
	if err != nil {
		return err
	}

	log, err := logger.New(false, parseResumeDebug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var parser structuring.ResumeParser
	if parserURL := os.Getenv(config.EnvParserURL); parserURL != "" {
		parser = structuring.NewParserService(parserURL)
	}

	profile, err := structuring.NewStructurer(client, parser, log).StructureResume(ctx, rawText)
	if err != nil {
		return err
	}

	if parseResumeVerbose {
		observability.NewPrinter(os.Stdout).PrintStructuredProfile(profile)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(profile)
}
