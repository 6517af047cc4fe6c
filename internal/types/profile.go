// Package types provides type definitions for structured data used throughout the talent-matcher system.
package types

// PersonalInfo holds the contact details extracted from a resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// ExperienceEntry is a single work-history item in a structured profile.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	IsCurrent    bool     `json:"is_current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// EducationEntry is a single education item in a structured profile.
type EducationEntry struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Grade        string `json:"grade"`
}

// SkillSet groups the skill categories extracted from a resume.
type SkillSet struct {
	Technical      []string `json:"technical"`
	Soft           []string `json:"soft"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`
}

// ProjectEntry is a single project item in a structured profile.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
}

// StructuredProfile is the normalized resume representation consumed by the
// matching logic. It is produced once per resume upload and supersedes (never
// merges with) any previously stored profile for the candidate.
type StructuredProfile struct {
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       SkillSet          `json:"skills"`
	Projects     []ProjectEntry    `json:"projects"`
}

// Normalize fills every optional field with its zero value so downstream
// consumers never branch on presence. Nil slices become empty slices, which
// also keeps JSON serialization stable ([] instead of null).
func (p *StructuredProfile) Normalize() {
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	for i := range p.Experience {
		if p.Experience[i].Achievements == nil {
			p.Experience[i].Achievements = []string{}
		}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	for i := range p.Projects {
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}
	if p.Skills.Technical == nil {
		p.Skills.Technical = []string{}
	}
	if p.Skills.Soft == nil {
		p.Skills.Soft = []string{}
	}
	if p.Skills.Languages == nil {
		p.Skills.Languages = []string{}
	}
	if p.Skills.Certifications == nil {
		p.Skills.Certifications = []string{}
	}
}
