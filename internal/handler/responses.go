package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/riot"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
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

// respondBytes writes a fully rendered binary body
func respondBytes(w http.ResponseWriter, contentType, filename string, body *bytes.Buffer) {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := body.WriteTo(w); err != nil {
		slog.Error("Failed to write response body", "error", err)
	}
}

// respondServiceError logs the full error and writes its user-facing form
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action, "error", err, "status", status)
	} else {
		log.Warn(action, "error", err, "status", status)
	}

	resp := ErrorResponse{Error: msg}
	// Server faults carry the request ID so callers can quote it against the logs
	if status >= http.StatusInternalServerError {
		resp.RequestID = logger.GetRequestID(r.Context())
	}
	var apiErr *riot.APIError
	if errors.As(err, &apiErr) {
		resp.Details = apiErr.Error()
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages.
// Input errors are checked first: repair writes wrap a missing reference as invalid input.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var apiErr *riot.APIError
	if errors.As(err, &apiErr) {
		return upstreamStatus(apiErr.StatusCode), ErrMsgUpstreamError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrUsernameTooShort):
		return http.StatusBadRequest, ErrMsgUsernameTooShortError
	case errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, ErrMsgPasswordTooShortError
	case errors.Is(err, domain.ErrInvalidParticipants):
		return http.StatusBadRequest, ErrMsgInvalidParticipantsError
	case errors.Is(err, domain.ErrTooManyItems):
		return http.StatusBadRequest, ErrMsgTooManyItemsError
	case errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest, ErrMsgInvalidDurationError
	case errors.Is(err, domain.ErrInvalidGameVersion):
		return http.StatusBadRequest, ErrMsgInvalidVersionError
	case errors.Is(err, domain.ErrInvalidRiotID):
		return http.StatusBadRequest, ErrMsgInvalidRiotIDError
	case errors.Is(err, domain.ErrInsufficientReferenceData):
		return http.StatusBadRequest, ErrMsgInsufficientDataError

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsErr
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgInvalidTokenError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError

	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrChampionNotFound):
		return http.StatusNotFound, ErrMsgChampionNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrFavoriteNotFound):
		return http.StatusNotFound, ErrMsgFavoriteNotFoundError
	case errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound, ErrMsgMatchNotFoundError
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound, ErrMsgParticipantNotFoundError

	// Name uniqueness is a registration validation failure
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, ErrMsgUsernameTakenError

	case errors.Is(err, domain.ErrChampionExists):
		return http.StatusConflict, ErrMsgChampionExistsError
	case errors.Is(err, domain.ErrChampionIDTaken):
		return http.StatusConflict, ErrMsgChampionIDTakenError

	case errors.Is(err, domain.ErrUpstreamNotConfigured):
		return http.StatusServiceUnavailable, ErrMsgUpstreamUnavailable
	case errors.Is(err, domain.ErrReferenceSourceUnavailable):
		return http.StatusBadGateway, ErrMsgCatalogUnavailable
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, ErrMsgUpstreamError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// upstreamStatus keeps the Riot status when it is a usable HTTP error code
func upstreamStatus(code int) int {
	if code >= http.StatusBadRequest && code <= 599 {
		return code
	}
	return http.StatusBadGateway
}
