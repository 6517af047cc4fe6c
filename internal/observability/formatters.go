// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable breakdown of one match score.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total score: %d / 100\n\n", result.TotalScore))
	sb.WriteString(fmt.Sprintf("Skills:      %6.2f  (weight %.2f)\n", result.SkillsMatch, result.Weights.Skills))
	sb.WriteString(fmt.Sprintf("Experience:  %6.2f  (weight %.2f)\n", result.ExperienceMatch, result.Weights.Experience))
	sb.WriteString(fmt.Sprintf("Semantic:    %6.2f  (weight %.2f)\n", result.SemanticMatch, result.Weights.Semantic))
	sb.WriteString(fmt.Sprintf("Location:    %6.2f  (weight %.2f)\n", result.LocationMatch, result.Weights.Location))
	sb.WriteString(fmt.Sprintf("Education:   %6.2f  (weight %.2f)", result.EducationMatch, result.Weights.Education))

	p.printBox("MATCH BREAKDOWN", sb.String())
}

// PrintJobRecommendations outputs the top ranked jobs for a candidate.
func (p *Printer) PrintJobRecommendations(recommendations []types.JobRecommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs ranked: %d\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Job.Title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", rec.MatchScore))
		if rec.Job.Location != "" {
			sb.WriteString(fmt.Sprintf("    Location: %s\n", rec.Job.Location))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(recommendations)-maxItemsToShow))
	}

	p.printBox("TOP JOB RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateRecommendations outputs the top ranked candidates for a job.
func (p *Printer) PrintCandidateRecommendations(recommendations []types.CandidateRecommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		position := rec.Candidate.CurrentPosition
		if position == "" {
			position = "(no current position)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, position))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", rec.MatchScore))
		if len(rec.Candidate.Skills) > 0 {
			skills := strings.Join(rec.Candidate.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(recommendations)-maxItemsToShow))
	}

	p.printBox("TOP CANDIDATE RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStructuredProfile outputs a summary of a freshly parsed resume profile.
func (p *Printer) PrintStructuredProfile(profile *types.StructuredProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:    %s\n", profile.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", profile.PersonalInfo.Email))
	sb.WriteString("\n")

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s\n", entry.Position, entry.Company))
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Skills.Technical) > 0 {
		skills := strings.Join(profile.Skills.Technical, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:  %s\n", skills))
	}

	p.printBox("STRUCTURED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}
