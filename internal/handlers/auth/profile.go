// internal/handlers/auth/profile.go
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/shiftsync/shiftsync_backend/internal/middleware"
	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

// Картинка профиля приходит строкой Base64; ограничиваем тело запроса,
// чтобы никто не загрузил несжатый снимок
const maxImageBodyBytes = 2 << 20

type ProfileHandler struct {
	users *repositories.UserRepository
}

func NewProfileHandler(users *repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.users.GetByUID(r.Context(), uid)
	if err == store.ErrNotFound {
		response.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	response.RespondWithJSON(w, http.StatusOK, user)
}

// UploadImageHandler сохраняет картинку профиля (частичное обновление
// документа, остальные поля не трогаем).
func (h *ProfileHandler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBodyBytes)

	var body struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if body.Image == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Image is required")
		return
	}

	err := h.users.Update(r.Context(), uid, func(user *models.User) error {
		user.ProfileImage = body.Image
		return nil
	})
	if err == store.ErrNotFound {
		response.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Profile image updated"})
}

// CompleteFirstLoginHandler снимает флаг первого входа.
func (h *ProfileHandler) CompleteFirstLoginHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	err := h.users.Update(r.Context(), uid, func(user *models.User) error {
		user.FirstLogin = false
		return nil
	})
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "First login completed"})
}
