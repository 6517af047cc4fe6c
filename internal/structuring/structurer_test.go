package structuring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/types"
)

const validProfileJSON = `{
  "personal_info": {
    "name": "Jordan Smith",
    "email": "jordan@example.com",
    "phone": "555-0100",
    "location": "Austin, TX"
  },
  "summary": "Backend engineer with five years of Go experience.",
  "experience": [
    {
      "company": "Acme Corp",
      "position": "Software Engineer",
      "start_date": "2020-06",
      "end_date": "",
      "is_current": true,
      "description": "Built internal services.",
      "achievements": ["Cut p99 latency by 40%"]
    }
  ],
  "skills": {
    "technical": ["Go", "PostgreSQL"],
    "soft": ["communication"]
  }
}`

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Complete(_ context.Context, _ string, _ llm.ModelTier, _ llm.Options) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubLLM) CompleteJSON(ctx context.Context, prompt string, tier llm.ModelTier, opts llm.Options) (string, error) {
	return s.Complete(ctx, prompt, tier, opts)
}

func (s *stubLLM) Close() error { return nil }

type stubParser struct {
	profile *types.StructuredProfile
	err     error
	calls   int
}

func (s *stubParser) Parse(_ context.Context, _ string) (*types.StructuredProfile, error) {
	s.calls++
	return s.profile, s.err
}

func TestStructureResume_ValidModelOutput(t *testing.T) {
	structurer := NewStructurer(&stubLLM{response: validProfileJSON}, nil, nil)

	profile, err := structurer.StructureResume(context.Background(), "Jordan Smith\nSoftware Engineer at Acme Corp")
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "Jordan Smith", profile.PersonalInfo.Name)
	assert.Equal(t, "jordan@example.com", profile.PersonalInfo.Email)
	require.Len(t, profile.Experience, 1)
	assert.True(t, profile.Experience[0].IsCurrent)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, profile.Skills.Technical)
}

func TestStructureResume_NormalizesMissingSections(t *testing.T) {
	structurer := NewStructurer(&stubLLM{response: validProfileJSON}, nil, nil)

	profile, err := structurer.StructureResume(context.Background(), "resume text")
	require.NoError(t, err)

	// Sections absent from the model output come back as empty slices, not nil.
	assert.NotNil(t, profile.Education)
	assert.Empty(t, profile.Education)
	assert.NotNil(t, profile.Projects)
	assert.NotNil(t, profile.Skills.Languages)
	assert.NotNil(t, profile.Skills.Certifications)
}

func TestStructureResume_StripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + validProfileJSON + "\n```"
	structurer := NewStructurer(&stubLLM{response: fenced}, nil, nil)

	profile, err := structurer.StructureResume(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", profile.PersonalInfo.Name)
}

func TestStructureResume_APICallError(t *testing.T) {
	callErr := errors.New("deadline exceeded")
	structurer := NewStructurer(&stubLLM{err: callErr}, nil, nil)

	_, err := structurer.StructureResume(context.Background(), "resume text")
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, callErr)
}

func TestStructureResume_MalformedOutputIsNotRetried(t *testing.T) {
	client := &stubLLM{response: "I could not parse this resume, sorry."}
	structurer := NewStructurer(client, nil, nil)

	_, err := structurer.StructureResume(context.Background(), "resume text")
	var outputErr *ModelOutputError
	require.ErrorAs(t, err, &outputErr)
	assert.Equal(t, "I could not parse this resume, sorry.", outputErr.Raw)
	assert.Equal(t, 1, client.calls)
}

func TestStructureResume_SchemaViolation(t *testing.T) {
	// Valid JSON, but experience must be an array of objects.
	structurer := NewStructurer(&stubLLM{response: `{"experience": "five years"}`}, nil, nil)

	_, err := structurer.StructureResume(context.Background(), "resume text")
	var outputErr *ModelOutputError
	require.ErrorAs(t, err, &outputErr)
}

func TestStructureResume_ParserPreferred(t *testing.T) {
	parser := &stubParser{profile: &types.StructuredProfile{
		PersonalInfo: types.PersonalInfo{Name: "Jordan Smith", Email: "jordan@example.com"},
		Summary:      "parsed externally",
	}}
	client := &stubLLM{response: validProfileJSON}
	structurer := NewStructurer(client, parser, nil)

	profile, err := structurer.StructureResume(context.Background(), "resume text")
	require.NoError(t, err)

	assert.Equal(t, "parsed externally", profile.Summary)
	assert.Equal(t, 1, parser.calls)
	assert.Equal(t, 0, client.calls)
	// Parser output is normalized the same way as model output.
	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Skills.Technical)
}

func TestStructureResume_ParserFailureFallsBackToModel(t *testing.T) {
	parser := &stubParser{err: errors.New("parser service returned status 503")}
	client := &stubLLM{response: validProfileJSON}
	structurer := NewStructurer(client, parser, nil)

	profile, err := structurer.StructureResume(context.Background(), "resume text")
	require.NoError(t, err)

	assert.Equal(t, 1, parser.calls)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Jordan Smith", profile.PersonalInfo.Name)
}

func TestValidateProfileJSON(t *testing.T) {
	assert.NoError(t, validateProfileJSON(validProfileJSON))
	assert.NoError(t, validateProfileJSON(`{}`))
	assert.Error(t, validateProfileJSON(`{"unknown_section": true}`))
	assert.Error(t, validateProfileJSON(`{"skills": {"technical": "Go"}}`))
	assert.Error(t, validateProfileJSON(`not json`))
}
