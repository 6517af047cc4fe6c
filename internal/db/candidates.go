package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/talent-matcher/internal/types"
)

const candidateColumns = `id, skills, experience_years, current_location, preferred_locations,
	current_position, current_company, summary`

// GetCandidateProfile retrieves one candidate profile by id.
func (db *DB) GetCandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidate_profiles WHERE id = $1`,
		candidateID,
	)

	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Entity: "candidate profile", ID: candidateID}
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}
	return candidate, nil
}

// ListRecentCandidates returns the most recently active profiles, capped at
// limit. This is the recommendation pool for job-side ranking.
func (db *DB) ListRecentCandidates(ctx context.Context, limit int) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidate_profiles ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate profiles: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateProfile
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate profile: %w", err)
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, rows.Err()
}

// SaveStructuredProfile stores the structured resume for a candidate. The
// profile is superseded wholesale on re-upload, never merged.
func (db *DB) SaveStructuredProfile(ctx context.Context, candidateID uuid.UUID, profile *types.StructuredProfile) error {
	jsonBytes, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal structured profile: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE candidate_profiles SET structured_profile = $2, updated_at = NOW() WHERE id = $1`,
		candidateID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save structured profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Entity: "candidate profile", ID: candidateID}
	}
	return nil
}

func scanCandidate(row pgx.Row) (*types.CandidateProfile, error) {
	var candidate types.CandidateProfile
	err := row.Scan(
		&candidate.ID, &candidate.Skills, &candidate.ExperienceYears,
		&candidate.CurrentLocation, &candidate.PreferredLocations,
		&candidate.CurrentPosition, &candidate.CurrentCompany, &candidate.Summary,
	)
	if err != nil {
		return nil, err
	}
	if candidate.Skills == nil {
		candidate.Skills = []string{}
	}
	if candidate.PreferredLocations == nil {
		candidate.PreferredLocations = []string{}
	}
	return &candidate, nil
}
