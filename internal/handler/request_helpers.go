package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RiftStats_Go/internal/auth"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req LoginRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam returns the trimmed query value or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetOptionalIntQueryParam parses an optional integer query parameter.
// ok is false when the value is present but not an integer.
func GetOptionalIntQueryParam(r *http.Request, paramName string, defaultValue int) (int, bool) {
	raw := GetOptionalQueryParam(r, paramName, "")
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// pathInt64 reads a positive integer URL parameter, writing a 400 on failure
func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || v <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return v, true
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, ok := pathInt64(w, r, name)
	if !ok {
		return 0, false
	}
	if v > int64(^uint32(0)>>1) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return int(v), true
}

// reportFilter reads the side and patch query parameters
func reportFilter(r *http.Request) domain.ReportFilter {
	return domain.ReportFilter{
		Side:  domain.Side(strings.ToLower(GetOptionalQueryParam(r, "side", ""))),
		Patch: GetOptionalQueryParam(r, "patch", ""),
	}
}

// callerProfile returns the authenticated caller or writes a 401
func callerProfile(w http.ResponseWriter, r *http.Request) (domain.Profile, bool) {
	p, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgAuthRequired)
		return domain.Profile{}, false
	}
	return p, true
}

// requireSelfOrAdmin writes a 403 unless the caller may act for username
func requireSelfOrAdmin(w http.ResponseWriter, r *http.Request, username string) bool {
	caller, ok := callerProfile(w, r)
	if !ok {
		return false
	}
	if !auth.CanActFor(caller, username) {
		logger.FromContext(r.Context()).Warn("Cross-user access denied",
			"caller", caller.Username, "target", username)
		respondError(w, http.StatusForbidden, ErrMsgNotAllowed)
		return false
	}
	return true
}

var matchDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// parseMatchDate accepts an RFC3339 timestamp or a plain date. Empty yields nil.
func parseMatchDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range matchDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidInput, raw)
}
