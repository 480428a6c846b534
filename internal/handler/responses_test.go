package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/riot"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"short password", fmt.Errorf("register: %w", domain.ErrPasswordTooShort), http.StatusBadRequest, ErrMsgPasswordTooShortError},
		{"participants", domain.ErrInvalidParticipants, http.StatusBadRequest, ErrMsgInvalidParticipantsError},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, ErrMsgInvalidCredentialsErr},
		{"bad token", domain.ErrInvalidToken, http.StatusUnauthorized, ErrMsgInvalidTokenError},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, ErrMsgForbiddenError},
		{"champion missing", fmt.Errorf("get: %w", domain.ErrChampionNotFound), http.StatusNotFound, ErrMsgChampionNotFoundError},
		{"favorite missing", domain.ErrFavoriteNotFound, http.StatusNotFound, ErrMsgFavoriteNotFoundError},
		{"match missing", domain.ErrMatchNotFound, http.StatusNotFound, ErrMsgMatchNotFoundError},
		{"champion exists", domain.ErrChampionExists, http.StatusConflict, ErrMsgChampionExistsError},
		{"champion id taken", domain.ErrChampionIDTaken, http.StatusConflict, ErrMsgChampionIDTakenError},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest, ErrMsgUsernameTakenError},
		{"import not configured", domain.ErrUpstreamNotConfigured, http.StatusServiceUnavailable, ErrMsgUpstreamUnavailable},
		{"catalogue down", domain.ErrReferenceSourceUnavailable, http.StatusBadGateway, ErrMsgCatalogUnavailable},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{
			// repair writes report missing references as bad input
			"invalid input wins over not found",
			fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrMatchNotFound),
			http.StatusBadRequest, ErrMsgInvalidRequestError,
		},
		{
			"upstream status kept",
			fmt.Errorf("failed to resolve account: %w", &riot.APIError{StatusCode: http.StatusNotFound, Message: "Data not found"}),
			http.StatusNotFound, ErrMsgUpstreamError,
		},
		{
			"upstream odd status",
			&riot.APIError{StatusCode: 302},
			http.StatusBadGateway, ErrMsgUpstreamError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError_UpstreamDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/import-matches", nil)

	respondServiceError(rec, req, "Import failed", &riot.APIError{StatusCode: http.StatusForbidden, Message: "Forbidden"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgUpstreamError, body.Error)
	assert.Contains(t, body.Details, "Forbidden")
}

func TestRespondServiceError_HidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/champions", nil)

	respondServiceError(rec, req, "List failed", errors.New("relation \"champions\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRespondServiceError_RequestID(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantID string
	}{
		{"server fault quotes request", errors.New("pq: connection reset"), "req-42"},
		{"client error omits it", domain.ErrMatchNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/matches/1", nil)
			req = req.WithContext(logger.WithRequestID(req.Context(), "req-42"))

			respondServiceError(rec, req, "Get failed", tt.err)

			body := decodeBody[ErrorResponse](t, rec)
			assert.Equal(t, tt.wantID, body.RequestID)
		})
	}
}
