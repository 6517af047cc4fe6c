package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "bare integer", raw: "85", want: 85},
		{name: "decimal", raw: "72.5", want: 72.5},
		{name: "surrounding whitespace", raw: "  90\n", want: 90},
		{name: "trailing period", raw: "65.", want: 65},
		{name: "score then prose", raw: "80 because the candidate fits well", want: 80},
		{name: "zero", raw: "0", want: 0},
		{name: "hundred", raw: "100", want: 100},
		{name: "empty", raw: "", wantErr: true},
		{name: "prose only", raw: "strong match", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "over range", raw: "150", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNumericScore(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreSemantic_CallFailureDegrades(t *testing.T) {
	scorer := NewScorer(&stubClient{err: errors.New("quota exceeded")}, nil, nil)
	score := scorer.scoreSemantic(context.Background(), testJob(), testCandidate())
	assert.Equal(t, semanticDefaultScore, score)
}

func TestScoreSemantic_UnparsableResponseDegrades(t *testing.T) {
	scorer := NewScorer(&stubClient{response: "I cannot provide a score"}, nil, nil)
	score := scorer.scoreSemantic(context.Background(), testJob(), testCandidate())
	assert.Equal(t, semanticDefaultScore, score)
}

func TestScoreSemantic_OutOfRangeDegrades(t *testing.T) {
	scorer := NewScorer(&stubClient{response: "250"}, nil, nil)
	score := scorer.scoreSemantic(context.Background(), testJob(), testCandidate())
	assert.Equal(t, semanticDefaultScore, score)
}

func TestScoreSemantic_ValidResponse(t *testing.T) {
	scorer := NewScorer(&stubClient{response: "87"}, nil, nil)
	score := scorer.scoreSemantic(context.Background(), testJob(), testCandidate())
	assert.Equal(t, 87.0, score)
}

func TestBuildSemanticPrompt_IncludesJobAndCandidate(t *testing.T) {
	client := &stubClient{response: "70"}
	scorer := NewScorer(client, nil, nil)
	job := testJob()
	candidate := testCandidate()

	scorer.scoreSemantic(context.Background(), job, candidate)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, job.Title)
	assert.Contains(t, prompt, candidate.CurrentPosition)
	assert.Contains(t, prompt, "5")
}

func TestStripHTML(t *testing.T) {
	plain := "Build and operate Go services."
	assert.Equal(t, plain, stripHTML(plain))

	html := "<p>Build <strong>Go</strong> services.</p>"
	stripped := stripHTML(html)
	assert.NotContains(t, stripped, "<")
	assert.Contains(t, stripped, "Build Go services.")
}

func TestTruncate_LongDescription(t *testing.T) {
	long := strings.Repeat("x", maxDescriptionChars+500)
	out := truncate(long, maxDescriptionChars)
	assert.Len(t, out, maxDescriptionChars+3)
	assert.True(t, strings.HasSuffix(out, "..."))
}
