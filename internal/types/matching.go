package types

import "github.com/google/uuid"

// JobPosting is the read-only view of a job record consumed by the matcher.
// The relational schema behind it is owned by the portal's CRUD layer.
type JobPosting struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SkillsRequired []string  `json:"skills_required"`
	ExperienceMin  int       `json:"experience_min"`
	ExperienceMax  int       `json:"experience_max"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	EducationLevel string    `json:"education_level"`
	Industry       string    `json:"industry"`
}

// CandidateProfile is the read-only view of a job seeker consumed by the matcher.
type CandidateProfile struct {
	ID                 uuid.UUID `json:"id"`
	Skills             []string  `json:"skills"`
	ExperienceYears    int       `json:"experience_years"`
	CurrentLocation    string    `json:"current_location"`
	PreferredLocations []string  `json:"preferred_locations"`
	CurrentPosition    string    `json:"current_position"`
	CurrentCompany     string    `json:"current_company"`
	Summary            string    `json:"summary"`
}

// MatchWeights are the fixed component weights of the composite match score.
// They always sum to 1.0 and are not configurable per call.
type MatchWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Semantic   float64 `json:"semantic"`
	Location   float64 `json:"location"`
	Education  float64 `json:"education"`
}

// DefaultMatchWeights returns the production weight set.
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{
		Skills:     0.35,
		Experience: 0.25,
		Semantic:   0.20,
		Location:   0.10,
		Education:  0.10,
	}
}

// MatchResult is the full score breakdown for one (job, candidate) pair.
// TotalScore is the weighted sum of the five components, rounded to the
// nearest integer. Components are kept unrounded so the invariant
// TotalScore == round(sum(component_i * weight_i)) holds exactly.
type MatchResult struct {
	TotalScore      int          `json:"total_score"`
	SkillsMatch     float64      `json:"skills_match"`
	ExperienceMatch float64      `json:"experience_match"`
	SemanticMatch   float64      `json:"semantic_match"`
	LocationMatch   float64      `json:"location_match"`
	EducationMatch  float64      `json:"education_match"`
	Weights         MatchWeights `json:"weights"`
}

// JobRecommendation pairs a job with its match score for a candidate.
type JobRecommendation struct {
	Job          JobPosting  `json:"job"`
	MatchScore   int         `json:"match_score"`
	MatchDetails MatchResult `json:"match_details"`
}

// CandidateRecommendation pairs a candidate with its match score for a job.
type CandidateRecommendation struct {
	Candidate    CandidateProfile `json:"candidate"`
	MatchScore   int              `json:"match_score"`
	MatchDetails MatchResult      `json:"match_details"`
}
