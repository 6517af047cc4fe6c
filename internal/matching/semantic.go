package matching

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/prompts"
	"github.com/jonathan/talent-matcher/internal/types"
)

// maxDescriptionChars bounds how much of the job description goes into the
// semantic prompt.
const maxDescriptionChars = 2000

// scoreSemantic asks the model for a 0-100 qualitative fit score. Any failure
// (call error, unparseable response, out-of-range value) degrades to the
// neutral default so the deterministic components are never blocked.
func (s *Scorer) scoreSemantic(ctx context.Context, job *types.JobPosting, candidate *types.CandidateProfile) float64 {
	if s.client == nil {
		return semanticDefaultScore
	}

	prompt := buildSemanticPrompt(job, candidate)

	opts := llm.DefaultOptions()
	opts.MaxTokens = 16 // a bare number is all we asked for

	raw, err := s.client.Complete(ctx, prompt, llm.TierLite, opts)
	if err != nil {
		s.logger.Warn("semantic match call failed, using neutral default",
			zap.String("job_id", job.ID.String()),
			zap.String("candidate_id", candidate.ID.String()),
			zap.Error(err))
		return semanticDefaultScore
	}

	score, err := parseNumericScore(raw)
	if err != nil {
		s.logger.Warn("semantic match response unparseable, using neutral default",
			zap.String("job_id", job.ID.String()),
			zap.String("candidate_id", candidate.ID.String()),
			zap.String("response", truncateForLog(raw, 120)),
			zap.Error(err))
		return semanticDefaultScore
	}

	return score
}

func buildSemanticPrompt(job *types.JobPosting, candidate *types.CandidateProfile) string {
	template := prompts.MustGet("matching.json", "semantic-fit-score")
	return prompts.Format(template, map[string]string{
		"JobTitle":         job.Title,
		"Industry":         job.Industry,
		"JobDescription":   truncate(stripHTML(job.Description), maxDescriptionChars),
		"CurrentPosition":  candidate.CurrentPosition,
		"CurrentCompany":   candidate.CurrentCompany,
		"ExperienceYears":  strconv.Itoa(candidate.ExperienceYears),
		"CandidateSummary": candidate.Summary,
	})
}

// parseNumericScore extracts the numeric score the prompt demands. Values
// outside [0, 100] are treated the same as parse failures.
func parseNumericScore(raw string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) == 0 {
		return 0, strconv.ErrSyntax
	}

	score, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "."), 64)
	if err != nil {
		return 0, err
	}
	if score < 0 || score > 100 {
		return 0, strconv.ErrRange
	}
	return score, nil
}

// stripHTML flattens HTML job descriptions to plain text. Portal postings are
// frequently stored as rich text.
func stripHTML(description string) string {
	if !strings.Contains(description, "<") {
		return description
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return description
	}
	return strings.TrimSpace(doc.Text())
}

func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}

func truncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
