package matching

import "strings"

// Component score constants. The asymmetry between the under- and
// over-qualification penalties is deliberate: missing years hurt more than
// surplus years.
const (
	exactSkillWeight   = 1.0
	partialSkillWeight = 0.5

	underExperiencePenaltyPerYear = 15.0
	overExperiencePenaltyPerYear  = 5.0
	overExperienceFloor           = 50.0

	preferredLocationScore   = 90.0
	sharedTokenLocationScore = 70.0
	// A different location is always "possible", so the floor is 30, never 0.
	locationFloor = 30.0

	// educationPlaceholderScore is a neutral constant: no structured
	// comparison of required vs. actual education level is implemented yet.
	educationPlaceholderScore = 75.0

	semanticDefaultScore = 50.0
)

// scoreSkills scores the candidate's skill list against the job requirements.
// Exact matches count full weight; a bidirectional substring relationship
// counts partial weight. The substring rule is known to produce false
// positives (e.g. "java" matching "javascript") and is kept as-is; tightening
// it changes historical scores.
func scoreSkills(required, candidate []string) float64 {
	if len(required) == 0 {
		return 100
	}

	candidateSkills := normalizeSkills(candidate)
	if len(candidateSkills) == 0 {
		return 0
	}

	matched := 0.0
	for _, req := range normalizeSkills(required) {
		weight := 0.0
		for _, cand := range candidateSkills {
			if cand == req {
				weight = exactSkillWeight
				break
			}
			if strings.Contains(cand, req) || strings.Contains(req, cand) {
				weight = partialSkillWeight
			}
		}
		matched += weight
	}

	score := matched / float64(len(required)) * 100
	if score > 100 {
		score = 100
	}
	return score
}

func normalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill != "" {
			normalized = append(normalized, skill)
		}
	}
	return normalized
}

// scoreExperience scores candidate years against the job's inclusive
// [min, max] range with linear penalties outside it.
func scoreExperience(years, experienceMin, experienceMax int) float64 {
	if years >= experienceMin && years <= experienceMax {
		return 100
	}

	if years < experienceMin {
		score := 100 - float64(experienceMin-years)*underExperiencePenaltyPerYear
		if score < 0 {
			return 0
		}
		return score
	}

	score := 100 - float64(years-experienceMax)*overExperiencePenaltyPerYear
	if score < overExperienceFloor {
		return overExperienceFloor
	}
	return score
}

// scoreLocation scores the job location against the candidate's current and
// preferred locations.
func scoreLocation(jobLocation, currentLocation string, preferredLocations []string) float64 {
	jobLoc := strings.ToLower(strings.TrimSpace(jobLocation))
	if jobLoc == "" {
		return 100
	}

	current := strings.ToLower(strings.TrimSpace(currentLocation))
	if current != "" && (strings.Contains(current, jobLoc) || strings.Contains(jobLoc, current)) {
		return 100
	}

	for _, preferred := range preferredLocations {
		pref := strings.ToLower(strings.TrimSpace(preferred))
		if pref != "" && (strings.Contains(pref, jobLoc) || strings.Contains(jobLoc, pref)) {
			return preferredLocationScore
		}
	}

	if sharesLocationToken(jobLoc, current) {
		return sharedTokenLocationScore
	}

	return locationFloor
}

// sharesLocationToken reports whether two comma-separated locations share a
// city or state token.
func sharesLocationToken(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	bTokens := make(map[string]bool)
	for _, token := range strings.Split(b, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			bTokens[token] = true
		}
	}
	for _, token := range strings.Split(a, ",") {
		token = strings.TrimSpace(token)
		if token != "" && bTokens[token] {
			return true
		}
	}
	return false
}

// scoreEducation returns 100 when the job has no education requirement and
// the neutral placeholder otherwise.
func scoreEducation(educationLevel string) float64 {
	if strings.TrimSpace(educationLevel) == "" {
		return 100
	}
	return educationPlaceholderScore
}
