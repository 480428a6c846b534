package handler

import (
	"net/http"

	"github.com/osse101/RiftStats_Go/internal/champion"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/ingest"
	"github.com/osse101/RiftStats_Go/internal/logger"
)

// ImportMatchesRequest pulls a player's recent matches from Riot
type ImportMatchesRequest struct {
	RiotID string `json:"riotId" validate:"required,riotid"`
	Region string `json:"region" validate:"omitempty,max=8"`
	Count  int    `json:"count" validate:"omitempty,min=1,max=100"`
}

// ImportMatchesResponse wraps the batch counters
type ImportMatchesResponse struct {
	Success bool               `json:"success"`
	Stats   domain.ImportStats `json:"stats"`
}

// GenerateMatchesRequest asks for synthetic matches
type GenerateMatchesRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=1000"`
}

// GenerateMatchesResponse reports how many synthetic matches were stored
type GenerateMatchesResponse struct {
	Success bool `json:"success"`
	domain.GenerateResult
}

// ManualMatchRequest is an admin-entered match with champions typed by name
type ManualMatchRequest struct {
	Date          string   `json:"date"`
	Version       string   `json:"version" validate:"required"`
	GameDuration  string   `json:"gameDuration" validate:"required"`
	RedChampions  []string `json:"redChampions" validate:"len=5,dive,required"`
	BlueChampions []string `json:"blueChampions" validate:"len=5,dive,required"`
	RedItems      [][]int  `json:"redItems" validate:"omitempty,max=5,dive,max=7"`
	BlueItems     [][]int  `json:"blueItems" validate:"omitempty,max=5,dive,max=7"`
	RedWins       *bool    `json:"redWins" validate:"required"`
	APIID         string   `json:"apiId" validate:"max=64"`
}

// SyncResponse wraps a catalogue sync result
type SyncResponse struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

// AdminHandler serves ingestion and catalogue maintenance endpoints
type AdminHandler struct {
	ingest    ingest.Service
	champions champion.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(ingestService ingest.Service, champions champion.Service) *AdminHandler {
	return &AdminHandler{ingest: ingestService, champions: champions}
}

// HandleImportMatches imports a player's recent matches
// @Summary Import matches from Riot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param request body ImportMatchesRequest true "Player"
// @Success 200 {object} ImportMatchesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/import-matches [post]
func (h *AdminHandler) HandleImportMatches(w http.ResponseWriter, r *http.Request) {
	var req ImportMatchesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Import matches"); err != nil {
		return
	}

	stats, err := h.ingest.ImportPlayerMatches(r.Context(), req.RiotID, req.Region, req.Count)
	if err != nil {
		respondServiceError(w, r, "Failed to import matches", err)
		return
	}
	respondJSON(w, http.StatusOK, ImportMatchesResponse{Success: true, Stats: stats})
}

// HandleGenerateMatches stores synthetic matches
// @Summary Generate synthetic matches
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateMatchesRequest true "Count"
// @Success 200 {object} GenerateMatchesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/generate-matches [post]
func (h *AdminHandler) HandleGenerateMatches(w http.ResponseWriter, r *http.Request) {
	var req GenerateMatchesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate matches"); err != nil {
		return
	}

	result, err := h.ingest.GenerateMatches(r.Context(), req.Count)
	if err != nil {
		respondServiceError(w, r, "Failed to generate matches", err)
		return
	}
	respondJSON(w, http.StatusOK, GenerateMatchesResponse{Success: true, GenerateResult: result})
}

// HandleAddManualMatch stores an admin-entered match
// @Summary Add manual match
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ManualMatchRequest true "Match"
// @Success 201 {object} domain.IngestResult
// @Success 200 {object} domain.IngestResult "Already imported"
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/add-manual-match [post]
func (h *AdminHandler) HandleAddManualMatch(w http.ResponseWriter, r *http.Request) {
	var req ManualMatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add manual match"); err != nil {
		return
	}

	date, err := parseMatchDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
		return
	}

	result, err := h.ingest.IngestManual(r.Context(), domain.ManualMatch{
		Date:          date,
		Version:       req.Version,
		Duration:      req.GameDuration,
		RedChampions:  req.RedChampions,
		BlueChampions: req.BlueChampions,
		RedItems:      req.RedItems,
		BlueItems:     req.BlueItems,
		RedWins:       *req.RedWins,
		ExternalID:    req.APIID,
	})
	if err != nil {
		respondServiceError(w, r, "Failed to add manual match", err)
		return
	}

	if result.Skipped {
		respondJSON(w, http.StatusOK, result)
		return
	}
	logger.FromContext(r.Context()).Info("Manual match stored", "match_id", result.MatchID)
	respondJSON(w, http.StatusCreated, result)
}

// HandleGetMatch returns a stored match with participants
// @Summary Get match
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match id"
// @Success 200 {object} domain.Match
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/matches/{id} [get]
func (h *AdminHandler) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}
	match, err := h.ingest.GetMatch(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Failed to get match", err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// HandleDeleteMatch removes a match and its participants
// @Summary Delete match
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Match id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/matches/{id} [delete]
func (h *AdminHandler) HandleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt64(w, r, "id")
	if !ok {
		return
	}
	if err := h.ingest.DeleteMatch(r.Context(), id); err != nil {
		respondServiceError(w, r, "Failed to delete match", err)
		return
	}
	logger.FromContext(r.Context()).Info("Match deleted", "match_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleSyncChampions pulls new champions from Data Dragon
// @Summary Sync champions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SyncResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/admin/champions/sync [post]
func (h *AdminHandler) HandleSyncChampions(w http.ResponseWriter, r *http.Request) {
	result, err := h.champions.SyncChampions(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to sync champions", err)
		return
	}
	respondJSON(w, http.StatusOK, SyncResponse{Message: MsgChampionsSynced, Result: result})
}

// HandleSyncItems refreshes the purchasable item catalogue from Data Dragon
// @Summary Sync items
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SyncResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/admin/items/sync [post]
func (h *AdminHandler) HandleSyncItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.champions.SyncItems(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to sync items", err)
		return
	}
	respondJSON(w, http.StatusOK, SyncResponse{Message: MsgItemsSynced, Result: result})
}
