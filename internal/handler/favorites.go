package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/RiftStats_Go/internal/user"
)

// FavoriteRequest is the body of POST /users/me/favorites
type FavoriteRequest struct {
	ChampionID int `json:"championId" validate:"required,gt=0"`
}

// UserFavoriteRequest names the target user explicitly
type UserFavoriteRequest struct {
	Username   string `json:"username" validate:"required"`
	ChampionID int    `json:"championId" validate:"required,gt=0"`
}

// FavoriteResponse reports the outcome of an add
type FavoriteResponse struct {
	Message string `json:"message"`
	Added   bool   `json:"added"`
}

// FavoritesHandler serves favorite champion endpoints
type FavoritesHandler struct {
	favorites user.FavoriteService
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favorites user.FavoriteService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

func (h *FavoritesHandler) list(w http.ResponseWriter, r *http.Request, username string) {
	champs, err := h.favorites.ListFavorites(r.Context(), username)
	if err != nil {
		respondServiceError(w, r, "Failed to list favorites", err)
		return
	}
	respondJSON(w, http.StatusOK, champs)
}

func (h *FavoritesHandler) add(w http.ResponseWriter, r *http.Request, username string, championID int) {
	added, err := h.favorites.AddFavorite(r.Context(), username, championID)
	if err != nil {
		respondServiceError(w, r, "Failed to add favorite", err)
		return
	}
	if !added {
		respondJSON(w, http.StatusOK, FavoriteResponse{Message: MsgFavoriteExists})
		return
	}
	respondJSON(w, http.StatusCreated, FavoriteResponse{Message: MsgFavoriteAdded, Added: true})
}

func (h *FavoritesHandler) remove(w http.ResponseWriter, r *http.Request, username string, championID int) {
	if err := h.favorites.RemoveFavorite(r.Context(), username, championID); err != nil {
		respondServiceError(w, r, "Failed to remove favorite", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFavoriteRemoved})
}

// HandleListMine lists the caller's favorites
// @Summary My favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Champion
// @Router /api/v1/users/me/favorites [get]
func (h *FavoritesHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerProfile(w, r)
	if !ok {
		return
	}
	h.list(w, r, caller.Username)
}

// HandleAddMine adds a favorite for the caller
// @Summary Add my favorite
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FavoriteRequest true "Champion"
// @Success 201 {object} FavoriteResponse
// @Success 200 {object} FavoriteResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/me/favorites [post]
func (h *FavoritesHandler) HandleAddMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerProfile(w, r)
	if !ok {
		return
	}
	var req FavoriteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add favorite"); err != nil {
		return
	}
	h.add(w, r, caller.Username, req.ChampionID)
}

// HandleRemoveMine removes one of the caller's favorites
// @Summary Remove my favorite
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param championId path int true "Champion id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/users/me/favorites/{championId} [delete]
func (h *FavoritesHandler) HandleRemoveMine(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerProfile(w, r)
	if !ok {
		return
	}
	championID, ok := pathInt(w, r, "championId")
	if !ok {
		return
	}
	h.remove(w, r, caller.Username, championID)
}

// HandleListForUser lists another user's favorites. Admins or the user only.
// @Summary User favorites
// @Tags champions
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {array} domain.Champion
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/champions/favorites/{username} [get]
func (h *FavoritesHandler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !requireSelfOrAdmin(w, r, username) {
		return
	}
	h.list(w, r, username)
}

// HandleAddForUser adds a favorite for the named user
// @Summary Add user favorite
// @Tags champions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UserFavoriteRequest true "Favorite"
// @Success 201 {object} FavoriteResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/champions/favorites [post]
func (h *FavoritesHandler) HandleAddForUser(w http.ResponseWriter, r *http.Request) {
	var req UserFavoriteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add user favorite"); err != nil {
		return
	}
	if !requireSelfOrAdmin(w, r, req.Username) {
		return
	}
	h.add(w, r, req.Username, req.ChampionID)
}

// HandleRemoveForUser removes a favorite from the named user
// @Summary Remove user favorite
// @Tags champions
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param championId path int true "Champion id"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/champions/favorites/{username}/{championId} [delete]
func (h *FavoritesHandler) HandleRemoveForUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !requireSelfOrAdmin(w, r, username) {
		return
	}
	championID, ok := pathInt(w, r, "championId")
	if !ok {
		return
	}
	h.remove(w, r, username, championID)
}
