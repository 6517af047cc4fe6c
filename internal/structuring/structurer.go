// Package structuring turns raw resume text into a normalized structured
// profile via a single low-temperature model extraction call, optionally
// trying an external specialized parser first.
package structuring

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/prompts"
	"github.com/jonathan/talent-matcher/internal/types"
)

// ResumeParser is the external parser capability the structurer tries before
// the model path. *ParserService implements it.
type ResumeParser interface {
	Parse(ctx context.Context, rawText string) (*types.StructuredProfile, error)
}

// Structurer produces StructuredProfiles from raw resume text.
type Structurer struct {
	client llm.Client
	parser ResumeParser
	logger *zap.Logger
}

// NewStructurer creates a Structurer backed by the given model client.
// parser may be nil when no external parsing service is configured.
func NewStructurer(client llm.Client, parser ResumeParser, logger *zap.Logger) *Structurer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Structurer{
		client: client,
		parser: parser,
		logger: logger,
	}
}

// StructureResume converts raw resume text into a normalized profile.
//
// When an external parser is configured it is tried first; on any failure the
// model path takes over and the first failure is only logged, never surfaced.
// Availability is deliberately prioritized over using the better parser.
// The model call itself gets exactly one attempt: a response that fails the
// schema parse is a ModelOutputError, not a retry.
func (s *Structurer) StructureResume(ctx context.Context, rawText string) (*types.StructuredProfile, error) {
	if s.parser != nil {
		profile, err := s.parser.Parse(ctx, rawText)
		if err == nil {
			profile.Normalize()
			return profile, nil
		}
		s.logger.Warn("external resume parser failed, falling back to model extraction",
			zap.Error(err))
	}

	prompt := buildExtractionPrompt(rawText)

	responseText, err := s.client.CompleteJSON(ctx, prompt, llm.TierStandard, llm.DefaultOptions())
	if err != nil {
		return nil, &APICallError{Message: "resume extraction call failed", Cause: err}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := validateProfileJSON(responseText); err != nil {
		return nil, &ModelOutputError{
			Message: "response failed structured profile schema",
			Raw:     responseText,
			Cause:   err,
		}
	}

	var profile types.StructuredProfile
	if err := json.Unmarshal([]byte(responseText), &profile); err != nil {
		return nil, &ModelOutputError{
			Message: "response is not valid JSON",
			Raw:     responseText,
			Cause:   err,
		}
	}

	profile.Normalize()
	return &profile, nil
}

// buildExtractionPrompt constructs the fixed extraction instruction embedding
// the raw resume text and the strict output schema.
func buildExtractionPrompt(rawText string) string {
	template := prompts.MustGet("structuring.json", "extract-structured-profile")
	return prompts.Format(template, map[string]string{
		"ResumeText": rawText,
	})
}
