// internal/handlers/auth/auth.go
package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/shiftsync/shiftsync_backend/config"
	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	authService "github.com/shiftsync/shiftsync_backend/internal/services/auth"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

type AuthHandler struct {
	users      *repositories.UserRepository
	jwtService *authService.JWTService
	cfg        *config.Config
}

func NewAuthHandler(users *repositories.UserRepository, jwtService *authService.JWTService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var regData models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&regData); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	regData.Email = strings.TrimSpace(regData.Email)
	if regData.FullName == "" || !strings.Contains(regData.Email, "@") {
		response.RespondWithError(w, http.StatusBadRequest, "Name and valid email are required")
		return
	}
	if len(regData.Password) < 6 {
		response.RespondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	// Роль по умолчанию — employee; менеджером можно стать только с кодом
	role := models.RoleEmployee
	if regData.Role == models.RoleManager {
		if regData.ManagerCode != h.cfg.ManagerCode {
			response.RespondWithError(w, http.StatusForbidden, "Invalid manager code")
			return
		}
		role = models.RoleManager
	}

	if _, err := h.users.GetCredentialByEmail(r.Context(), regData.Email); err == nil {
		response.RespondWithError(w, http.StatusBadRequest, "Email already registered")
		return
	} else if err != store.ErrNotFound {
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	passwordHash, err := authService.HashPassword(regData.Password)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	uid := uuid.NewString()
	cred := &models.Credential{
		UID:          uid,
		Email:        regData.Email,
		PasswordHash: passwordHash,
	}
	if err := h.users.SaveCredential(r.Context(), cred); err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := &models.User{
		UID:        uid,
		FullName:   regData.FullName,
		IDNumber:   regData.IDNumber,
		Email:      regData.Email,
		Role:       role,
		HourlyRate: 0, // стартовая ставка, менеджер выставит позже
		FirstLogin: true,
	}
	if err := h.users.Save(r.Context(), user); err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	response.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
		"uid":     uid,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var loginData models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginData); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	cred, err := h.users.GetCredentialByEmail(r.Context(), loginData.Email)
	if err == store.ErrNotFound {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !authService.CheckPassword(cred.PasswordHash, loginData.Password) {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	// Учётные данные верны, но профиля может не быть — тогда клиенту
	// остаётся только вернуться на экран входа
	user, err := h.users.GetByUID(r.Context(), cred.UID)
	if err == store.ErrNotFound {
		response.RespondWithError(w, http.StatusNotFound, "User profile not found")
		return
	}
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	accessToken, refreshToken, err := h.jwtService.GenerateToken(r.Context(), user.UID, user.FullName, user.Role)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Could not generate token")
		return
	}

	response.RespondWithJSON(w, http.StatusOK, models.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		UID:          user.UID,
		FullName:     user.FullName,
		Role:         user.Role,
	})
}

func (h *AuthHandler) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	type RequestBody struct {
		RefreshToken string `json:"refresh_token"`
	}

	var body RequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if body.RefreshToken == "" {
		response.RespondWithError(w, http.StatusUnauthorized, "Refresh token required")
		return
	}

	uid, err := h.jwtService.ValidateRefreshToken(r.Context(), body.RefreshToken)
	if err != nil {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	user, err := h.users.GetByUID(r.Context(), uid)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "User not found")
		return
	}

	// Старый refresh гасим, выдаём новую пару
	_ = h.jwtService.RevokeRefreshToken(r.Context(), body.RefreshToken)

	accessToken, refreshToken, err := h.jwtService.GenerateToken(r.Context(), user.UID, user.FullName, user.Role)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Could not generate token")
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]string{
		"token":         accessToken,
		"refresh_token": refreshToken,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	type RequestBody struct {
		RefreshToken string `json:"refresh_token"`
	}

	var body RequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.RefreshToken != "" {
		_ = h.jwtService.RevokeRefreshToken(r.Context(), body.RefreshToken)
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
