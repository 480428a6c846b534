package handler

import (
	"net/http"

	"github.com/osse101/RiftStats_Go/internal/auth"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/user"
)

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// ChangePasswordRequest is the body of a self-service password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,max=72"`
}

// AuthHandler serves account endpoints
type AuthHandler struct {
	auth     auth.Service
	profiles user.ProfileService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService auth.Service, profiles user.ProfileService) *AuthHandler {
	return &AuthHandler{auth: authService, profiles: profiles}
}

// HandleRegister creates an account
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
		return
	}

	profile, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, "Failed to register user", err)
		return
	}

	logger.FromContext(r.Context()).Info("User registered", "username", profile.Username)
	respondJSON(w, http.StatusCreated, profile)
}

// HandleLogin exchanges credentials for a session token
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} domain.Session
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	session, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, "Login failed", err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// HandleMe returns the caller's profile
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/users/me [get]
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerProfile(w, r)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(r.Context(), caller.Username)
	if err != nil {
		respondServiceError(w, r, "Failed to load profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleChangePassword updates the caller's password after verifying the old one
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Passwords"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/users/me/password [put]
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerProfile(w, r)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Change password"); err != nil {
		return
	}

	if err := h.auth.ChangePassword(r.Context(), caller.Username, req.OldPassword, req.NewPassword); err != nil {
		respondServiceError(w, r, "Failed to change password", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPasswordChanged})
}
