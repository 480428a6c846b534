package handler

import (
	"bytes"
	"net/http"

	"github.com/osse101/RiftStats_Go/internal/champion"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/report"
)

// Content types of rendered reports
const (
	ContentTypePNG  = "image/png"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// CreateChampionRequest adds a champion. ID is optional; local ids are assigned when absent.
type CreateChampionRequest struct {
	Name string `json:"name" validate:"required,max=64"`
	ID   *int   `json:"id,omitempty" validate:"omitempty,gt=0"`
}

// ChampionHandler serves the public catalogue and per-champion reports
type ChampionHandler struct {
	champions champion.Service
	reports   report.Service
}

// NewChampionHandler creates a new champion handler
func NewChampionHandler(champions champion.Service, reports report.Service) *ChampionHandler {
	return &ChampionHandler{champions: champions, reports: reports}
}

// HandleList lists champions by name
// @Summary List champions
// @Tags champions
// @Produce json
// @Success 200 {array} domain.Champion
// @Router /api/v1/champions [get]
func (h *ChampionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	champs, err := h.champions.List(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to list champions", err)
		return
	}
	respondJSON(w, http.StatusOK, champs)
}

// HandleGet returns one champion
// @Summary Get champion
// @Tags champions
// @Produce json
// @Param id path int true "Champion id"
// @Success 200 {object} domain.Champion
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/champions/{id} [get]
func (h *ChampionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	champ, err := h.champions.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Failed to get champion", err)
		return
	}
	respondJSON(w, http.StatusOK, champ)
}

// HandleCreate adds a champion to the catalogue
// @Summary Create champion
// @Tags champions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateChampionRequest true "Champion"
// @Success 201 {object} domain.Champion
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/champions [post]
func (h *ChampionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateChampionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create champion"); err != nil {
		return
	}

	champ, err := h.champions.Create(r.Context(), req.Name, req.ID)
	if err != nil {
		respondServiceError(w, r, "Failed to create champion", err)
		return
	}

	logger.FromContext(r.Context()).Info("Champion created", "id", champ.ID, "name", champ.Name)
	respondJSON(w, http.StatusCreated, champ)
}

// HandleListItems lists stored items
// @Summary List items
// @Tags champions
// @Produce json
// @Success 200 {array} domain.Item
// @Router /api/v1/items [get]
func (h *ChampionHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.champions.ListItems(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to list items", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleListPatches lists patches that have matches, newest first
// @Summary List patches
// @Tags reports
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/patches [get]
func (h *ChampionHandler) HandleListPatches(w http.ResponseWriter, r *http.Request) {
	patches, err := h.reports.ListPatches(r.Context())
	if err != nil {
		respondServiceError(w, r, "Failed to list patches", err)
		return
	}
	respondJSON(w, http.StatusOK, patches)
}

// HandleWinrate returns overall and per-side win rates
// @Summary Champion win rate
// @Tags reports
// @Produce json
// @Param id path int true "Champion id"
// @Param patch query string false "Patch, e.g. 15.3"
// @Success 200 {object} domain.ChampionWinrate
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/champions/{id}/winrate [get]
func (h *ChampionHandler) HandleWinrate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	stats, err := h.reports.ChampionWinrate(r.Context(), id, GetOptionalQueryParam(r, "patch", ""))
	if err != nil {
		respondServiceError(w, r, "Failed to compute win rate", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// HandleWinrateHistory returns the per-patch win rate series
// @Summary Champion win rate history
// @Tags reports
// @Produce json
// @Param id path int true "Champion id"
// @Success 200 {array} domain.PatchWinrate
// @Router /api/v1/champions/{id}/winrate-history [get]
func (h *ChampionHandler) HandleWinrateHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	history, err := h.reports.WinrateHistory(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Failed to compute win rate history", err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// HandleWinrateHistoryChart renders the history as a PNG line chart
// @Summary Champion win rate chart
// @Tags reports
// @Produce png
// @Param id path int true "Champion id"
// @Success 200 {file} binary
// @Router /api/v1/champions/{id}/winrate-history.png [get]
func (h *ChampionHandler) HandleWinrateHistoryChart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.reports.WinrateHistoryChart(r.Context(), id, &buf); err != nil {
		respondServiceError(w, r, "Failed to render win rate chart", err)
		return
	}
	respondBytes(w, ContentTypePNG, "", &buf)
}

// HandleTopItems ranks items built on a champion
// @Summary Champion top items
// @Tags reports
// @Produce json
// @Param id path int true "Champion id"
// @Param patch query string false "Patch"
// @Param limit query int false "Max rows, default 10"
// @Success 200 {array} domain.ItemPerformance
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/champions/{id}/top-items [get]
func (h *ChampionHandler) HandleTopItems(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	limit, ok := GetOptionalIntQueryParam(r, "limit", report.DefaultTopItemsLimit)
	if !ok {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}

	items, err := h.reports.TopItems(r.Context(), id, GetOptionalQueryParam(r, "patch", ""), limit)
	if err != nil {
		respondServiceError(w, r, "Failed to rank items", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}
