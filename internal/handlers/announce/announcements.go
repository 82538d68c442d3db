// internal/handlers/announce/announcements.go
package announce

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiftsync/shiftsync_backend/internal/middleware"
	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
)

type AnnouncementHandler struct {
	announcements *repositories.AnnouncementRepository
	users         *repositories.UserRepository
}

func NewAnnouncementHandler(announcements *repositories.AnnouncementRepository, users *repositories.UserRepository) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcements: announcements,
		users:         users,
	}
}

// ListHandler — объявления от новых к старым, видны всем ролям.
func (h *AnnouncementHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.announcements.List(r.Context())
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.RespondWithJSON(w, http.StatusOK, list)
}

// CreateHandler — новое объявление. Имя автора кладём прямо в документ,
// чтобы список рисовался без похода в users.
func (h *AnnouncementHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if body.Title == "" || body.Content == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	author, err := h.users.GetByUID(r.Context(), uid)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "User not found")
		return
	}

	a := &models.Announcement{
		ID:         uuid.NewString(),
		Title:      body.Title,
		Content:    body.Content,
		Timestamp:  time.Now().UnixMilli(),
		AuthorName: author.FullName,
	}
	if err := h.announcements.Create(r.Context(), a); err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to create announcement")
		return
	}
	response.RespondWithJSON(w, http.StatusCreated, a)
}

func (h *AnnouncementHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.announcements.Delete(r.Context(), id); err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Failed to delete announcement")
		return
	}
	response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Announcement deleted"})
}
