// Package server provides the HTTP REST API wrapping the matching core.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/feedback"
	"github.com/jonathan/talent-matcher/internal/structuring"
)

// HTTPStatus returns the appropriate HTTP status code for a core error.
// Anything unrecognized propagates as a 500; there is no blanket
// catch-and-200.
func HTTPStatus(err error) int {
	var (
		unsupported  *extraction.UnsupportedFormatError
		extractFail  *extraction.ExtractionError
		modelOutput  *structuring.ModelOutputError
		invalidScore *feedback.InvalidFeedbackScoreError
		missingField *feedback.MissingRequiredFieldError
		notFound     *db.NotFoundError
	)

	switch {
	case errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &extractFail):
		return http.StatusUnprocessableEntity
	case errors.As(err, &modelOutput):
		return http.StatusBadGateway
	case errors.As(err, &invalidScore), errors.As(err, &missingField):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
