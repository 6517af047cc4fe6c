package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/types"
)

// maxResumeUploadBytes caps resume uploads at 10 MB.
const maxResumeUploadBytes = 10 << 20

// ParseResumeResponse is the response for POST /resumes/parse.
type ParseResumeResponse struct {
	Profile        *types.StructuredProfile `json:"profile"`
	ProfileUpdated bool                     `json:"profile_updated"`
}

// handleParseResume accepts a multipart resume upload, extracts its text and
// structures it. With update_profile=true and a candidate_id, the structured
// profile is persisted, superseding any previous one.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxResumeUploadBytes)
	if err := r.ParseMultipartForm(maxResumeUploadBytes); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "missing resume file"})
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "failed to read resume file"})
		return
	}

	rawText, err := extraction.ExtractText(fileBytes, header.Filename)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	profile, err := s.structurer.StructureResume(ctx, rawText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	updated := false
	if r.FormValue("update_profile") == "true" {
		candidateID, err := uuid.Parse(r.FormValue("candidate_id"))
		if err != nil {
			s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "update_profile requires a valid candidate_id"})
			return
		}
		if err := s.database.SaveStructuredProfile(ctx, candidateID, profile); err != nil {
			s.errorResponse(w, err)
			return
		}
		updated = true
	}

	s.jsonResponse(w, http.StatusOK, ParseResumeResponse{Profile: profile, ProfileUpdated: updated})
}

// JobRecommendationsResponse wraps a ranked job list for a candidate.
type JobRecommendationsResponse struct {
	Recommendations []types.JobRecommendation `json:"recommendations"`
	Count           int                       `json:"count"`
}

// CandidateRecommendationsResponse wraps a ranked candidate list for a job.
type CandidateRecommendationsResponse struct {
	Recommendations []types.CandidateRecommendation `json:"recommendations"`
	Count           int                             `json:"count"`
}

// handleJobRecommendations returns ranked job recommendations for a candidate.
func (s *Server) handleJobRecommendations(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid candidate id"})
		return
	}

	recommendations, err := s.ranker.RankJobsForCandidate(r.Context(), candidateID, rankOptions(r))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, JobRecommendationsResponse{
		Recommendations: recommendations,
		Count:           len(recommendations),
	})
}

// handleCandidateRecommendations returns ranked candidate recommendations for a job.
func (s *Server) handleCandidateRecommendations(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid job id"})
		return
	}

	recommendations, err := s.ranker.RankCandidatesForJob(r.Context(), jobID, rankOptions(r))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, CandidateRecommendationsResponse{
		Recommendations: recommendations,
		Count:           len(recommendations),
	})
}

// MatchScoreResponse is the response for GET /match-score.
type MatchScoreResponse struct {
	JobID       uuid.UUID         `json:"job_id"`
	CandidateID uuid.UUID         `json:"candidate_id"`
	Match       types.MatchResult `json:"match"`
}

// handleMatchScore computes the match breakdown for one (job, candidate) pair.
func (s *Server) handleMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	jobID, err := uuid.Parse(r.URL.Query().Get("job_id"))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid job_id"})
		return
	}
	candidateID, err := uuid.Parse(r.URL.Query().Get("candidate_id"))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid candidate_id"})
		return
	}

	job, err := s.database.GetJobPosting(ctx, jobID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	candidate, err := s.database.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	result := s.scorer.Score(ctx, job, candidate)

	s.jsonResponse(w, http.StatusOK, MatchScoreResponse{
		JobID:       jobID,
		CandidateID: candidateID,
		Match:       result,
	})
}

// RecordFeedbackResponse acknowledges a recorded feedback entry.
type RecordFeedbackResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

// handleRecordFeedback validates and appends a match feedback record.
func (s *Server) handleRecordFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.RecordFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	fb, err := s.feedback.RecordFeedback(r.Context(), req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, RecordFeedbackResponse{ID: fb.ID, Status: "recorded"})
}

// handleHealth reports liveness and database reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.database.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  fmt.Sprintf("database unreachable: %v", err),
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rankOptions parses limit and min_score query parameters.
func rankOptions(r *http.Request) ranking.Options {
	return ranking.Options{
		Limit:    parseQueryInt(r, "limit", 10, 50),
		MinScore: parseQueryInt(r, "min_score", 0, 0),
	}
}

// parseQueryInt parses an integer query parameter with a default and an
// optional maximum (0 means uncapped).
func parseQueryInt(r *http.Request, name string, defaultValue, maxValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	if maxValue > 0 && value > maxValue {
		return maxValue
	}
	return value
}
