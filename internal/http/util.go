package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// validationErrorPatterns holds common validation error substrings to classify 422 vs 5xx.
// Keeping this at package scope avoids per-call allocations in isValidationError.

var validationErrorPatterns = []string{ //nolint:gochecknoglobals // read-only cache of patterns to avoid per-call allocations
	"is required and cannot be empty",
	"cannot be empty",
	"cannot exceed",
	"cannot be negative",
	"must be one of",
	"must be greater than zero",
	"bid must be an integer",
}

// isValidationError checks for common validation error patterns to decide 422 vs 5xx.
// This is a stopgap until typed validation errors are adopted everywhere.
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, p := range validationErrorPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// parseIDPath parses the {id} path segment as a positive integer.
// Returns false with a 400 already written when the segment is not an id.
func parseIDPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("id must be a positive integer")},
		)
		return 0, false
	}
	return id, true
}
