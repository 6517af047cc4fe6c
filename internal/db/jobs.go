package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

const jobPostingColumns = `id, title, description, skills_required, experience_min, experience_max,
	location, employment_type, education_level, industry`

// GetJobPosting retrieves one job posting by id.
func (db *DB) GetJobPosting(ctx context.Context, jobID uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings WHERE id = $1`,
		jobID,
	)

	job, err := scanJobPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "job posting", ID: jobID}
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return job, nil
}

// ListRecentJobPostings returns the most recently created postings, capped at
// limit. This is the recommendation pool for candidate-side ranking.
func (db *DB) ListRecentJobPostings(ctx context.Context, limit int) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobPostingColumns+` FROM job_postings ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanJobPosting(row pgx.Row) (*types.JobPosting, error) {
	var job types.JobPosting
	err := row.Scan(
		&job.ID, &job.Title, &job.Description, &job.SkillsRequired,
		&job.ExperienceMin, &job.ExperienceMax,
		&job.Location, &job.EmploymentType, &job.EducationLevel, &job.Industry,
	)
	if err != nil {
		return nil, err
	}
	if job.SkillsRequired == nil {
		job.SkillsRequired = []string{}
	}
	return &job, nil
}
