package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// ValidationErrorResponse lists the fields that failed validation
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeRequest strictly decodes the JSON body into dst and validates it.
// On false the response is already written.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		log.Warn(op+" request too large", "limit", tooLarge.Limit)
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
		return false
	case err != nil:
		log.Warn(op+" request malformed", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := validateRequest(dst); err != nil {
		log.Debug(op+" request failed validation", "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// requiredQuery returns a non-empty query parameter or writes a 400
func requiredQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	if v := r.URL.Query().Get(name); v != "" {
		return v, true
	}
	logger.FromContext(r.Context()).Warn("Query parameter missing", "param", name)
	respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
	return "", false
}

// limitQuery parses ?limit. Absent means 0, which services read as their
// default; negative or non-numeric values get a 400.
func limitQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err == nil && limit >= 0 {
		return limit, true
	}
	logger.FromContext(r.Context()).Warn("Invalid limit parameter", "limit", raw)
	respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
	return 0, false
}
