// Package types provides type definitions for structured data used throughout the talent-matcher system.
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredProfile_Normalize_EmptyProfile(t *testing.T) {
	var profile StructuredProfile
	profile.Normalize()

	assert.NotNil(t, profile.Experience)
	assert.NotNil(t, profile.Education)
	assert.NotNil(t, profile.Projects)
	assert.NotNil(t, profile.Skills.Technical)
	assert.NotNil(t, profile.Skills.Soft)
	assert.NotNil(t, profile.Skills.Languages)
	assert.NotNil(t, profile.Skills.Certifications)
}

func TestStructuredProfile_Normalize_NestedSlices(t *testing.T) {
	profile := StructuredProfile{
		Experience: []ExperienceEntry{{Company: "Acme Corp"}},
		Projects:   []ProjectEntry{{Name: "matcher"}},
	}
	profile.Normalize()

	assert.NotNil(t, profile.Experience[0].Achievements)
	assert.NotNil(t, profile.Projects[0].Technologies)
}

func TestStructuredProfile_Normalize_PreservesExistingData(t *testing.T) {
	profile := StructuredProfile{
		Summary: "backend engineer",
		Skills:  SkillSet{Technical: []string{"Go"}},
		Education: []EducationEntry{
			{Institution: "State University", Degree: "BS"},
		},
	}
	profile.Normalize()

	assert.Equal(t, "backend engineer", profile.Summary)
	assert.Equal(t, []string{"Go"}, profile.Skills.Technical)
	require.Len(t, profile.Education, 1)
	assert.Equal(t, "State University", profile.Education[0].Institution)
}

func TestStructuredProfile_NormalizedJSONHasArraysNotNull(t *testing.T) {
	var profile StructuredProfile
	profile.Normalize()

	jsonBytes, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"experience":[]`)
	assert.Contains(t, string(jsonBytes), `"education":[]`)
	assert.Contains(t, string(jsonBytes), `"projects":[]`)
	assert.NotContains(t, string(jsonBytes), `null`)
}

func TestStructuredProfile_JSONRoundTrip(t *testing.T) {
	profile := StructuredProfile{
		PersonalInfo: PersonalInfo{Name: "Jordan Smith", Email: "jordan@example.com"},
		Summary:      "five years of Go",
		Experience: []ExperienceEntry{
			{
				Company:      "Acme Corp",
				Position:     "Software Engineer",
				StartDate:    "2020-06",
				IsCurrent:    true,
				Achievements: []string{"cut latency 40%"},
			},
		},
		Skills: SkillSet{Technical: []string{"Go", "PostgreSQL"}},
	}

	jsonBytes, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded StructuredProfile
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, profile, decoded)
}
