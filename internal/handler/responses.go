package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CarbonScan_Go/internal/domain"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// maxPooledBuffer keeps one large leaderboard or history body from
// pinning its buffer in the pool
const maxPooledBuffer = 64 << 10

var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxPooledBuffer {
		buf.Reset()
		encodeBuffers.Put(buf)
	}
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer releaseBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsErr  = "Too many requests. Please try again later."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgBarcodeMissingError      = "Barcode missing"
	ErrMsgInvalidBarcodeError      = "Invalid barcode. Expected 8 to 14 digits."
	ErrMsgProductNotFoundError     = "Product not found"
	ErrMsgProductLookupFailedError = "Failed to fetch product info"

	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgDuplicateEmailError = "Email is already registered"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon. errors.Is walks wrapped chains.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrBarcodeMissing):
		return http.StatusBadRequest, ErrMsgBarcodeMissingError
	case errors.Is(err, domain.ErrInvalidBarcode):
		return http.StatusBadRequest, ErrMsgInvalidBarcodeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, ErrMsgProductNotFoundError
	case errors.Is(err, domain.ErrProductLookupFailed):
		return http.StatusBadGateway, ErrMsgProductLookupFailedError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, ErrMsgDuplicateEmailError
	case errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
