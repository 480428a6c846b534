package handler

import (
	"net/http"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/ingest"
)

// RawItemRequest upserts an item by id
type RawItemRequest struct {
	ID   int    `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,max=128"`
}

// RawUserRequest upserts an account. The password is plaintext and hashed server-side.
type RawUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

// RawMatchRequest upserts a match row by id
type RawMatchRequest struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Date       string `json:"date"`
	Patch      string `json:"patch" validate:"required,max=16"`
	Duration   string `json:"duration" validate:"required"`
	RedWon     bool   `json:"redWon"`
	ExternalID string `json:"externalId" validate:"max=64"`
}

// RawParticipantRequest upserts a participant, or inserts one when id is absent
type RawParticipantRequest struct {
	ID         *int64 `json:"id,omitempty" validate:"omitempty,gt=0"`
	MatchID    int64  `json:"matchId" validate:"required,gt=0"`
	ChampionID int    `json:"championId" validate:"required,gt=0"`
	IsRed      bool   `json:"isRed"`
}

// RawParticipantItemRequest links an item to a participant
type RawParticipantItemRequest struct {
	ParticipantID int64 `json:"participantId" validate:"required,gt=0"`
	ItemID        int   `json:"itemId" validate:"required,gt=0"`
}

// RawFavoriteRequest links a champion to a user
type RawFavoriteRequest struct {
	Username   string `json:"username" validate:"required"`
	ChampionID int    `json:"championId" validate:"required,gt=0"`
}

// RawHandler serves the per-table repair endpoints
type RawHandler struct {
	repair ingest.RepairService
}

// NewRawHandler creates a new raw repair handler
func NewRawHandler(repair ingest.RepairService) *RawHandler {
	return &RawHandler{repair: repair}
}

// rawWrite is the shared decode, call, respond flow of every raw endpoint
func rawWrite[REQ any](w http.ResponseWriter, r *http.Request, opName string, write func(REQ) (domain.RawResult, error)) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}
	res, err := write(req)
	if err != nil {
		respondServiceError(w, r, opName+" failed", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleItem upserts an item
// @Summary Raw item upsert
// @Tags admin-raw
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RawItemRequest true "Item"
// @Success 200 {object} domain.RawResult
// @Router /api/v1/admin/raw/item [post]
func (h *RawHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	rawWrite(w, r, "Raw item", func(req RawItemRequest) (domain.RawResult, error) {
		return h.repair.UpsertItem(r.Context(), domain.Item{ID: req.ID, Name: req.Name})
	})
}

// HandleUser upserts a user
// @Summary Raw user upsert
// @Tags admin-raw
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RawUserRequest true "User"
// @Success 200 {object} domain.RawResult
// @Router /api/v1/admin/raw/user [post]
func (h *RawHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	rawWrite(w, r, "Raw user", func(req RawUserRequest) (domain.RawResult, error) {
		return h.repair.UpsertUser(r.Context(), req.Username, req.Password, req.IsAdmin)
	})
}

// HandleMatch upserts a match row
// @Summary Raw match upsert
// @Tags admin-raw
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RawMatchRequest true "Match"
// @Success 200 {object} domain.RawResult
// @Router /api/v1/admin/raw/match [post]
func (h *RawHandler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	rawWrite(w, r, "Raw match", func(req RawMatchRequest) (domain.RawResult, error) {
		date, err := parseMatchDate(req.Date)
		if err != nil {
			return domain.RawResult{}, err
		}
		m := domain.RawMatch{
			ID:         req.ID,
			Patch:      req.Patch,
			Duration:   req.Duration,
			RedWon:     req.RedWon,
			ExternalID: req.ExternalID,
		}
		if date != nil {
			m.PlayedAt = *date
		}
		return h.repair.UpsertMatch(r.Context(), m)
	})
}

// HandleParticipant upserts a participant
// @Summary Raw participant upsert
// @Tags admin-raw
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RawParticipantRequest true "Participant"
// @Success 200 {object} domain.RawResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/raw/participant [post]
func (h *RawHandler) HandleParticipant(w http.ResponseWriter, r *http.Request) {
	rawWrite(w, r, "Raw participant", func(req RawParticipantRequest) (domain.RawResult, error) {
		return h.repair.UpsertParticipant(r.Context(), domain.RawParticipant{
			ID:         req.ID,
			MatchID:    req.MatchID,
			ChampionID: req.ChampionID,
			IsRed:      req.IsRed,
		})
	})
}

// HandleParticipantItem links an item to a participant
// @Summary Raw participant item
// @Tags admin-raw
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RawParticipantItemRequest true "Link"
// @Success 200 {object} domain.RawResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/raw/participant-item [post]
func (h *RawHandler) HandleParticipantItem(w http.ResponseWriter, r *http.Request) {
	rawWrite(w, r, "Raw participant item", func(req RawParticipantItemRequest) (domain.RawResult, error) {
		return h.repair.AddParticipantItem(r.Context(), req.ParticipantID, req.ItemID)
	})
}

// HandleFavorite links a champion to a user
// @Summary Raw favorite
// @Tags admin-raw
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RawFavoriteRequest true "Favorite"
// @Success 200 {object} domain.RawResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/raw/favorite [post]
func (h *RawHandler) HandleFavorite(w http.ResponseWriter, r *http.Request) {
	rawWrite(w, r, "Raw favorite", func(req RawFavoriteRequest) (domain.RawResult, error) {
		return h.repair.AddFavorite(r.Context(), req.Username, req.ChampionID)
	})
}
