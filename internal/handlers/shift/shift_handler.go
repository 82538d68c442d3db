// internal/handlers/shift/shift_handler.go
package shift

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
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

type shiftPayload struct {
	StartTime       int64  `json:"startTime"`
	EndTime         int64  `json:"endTime"`
	RequiredWorkers int    `json:"requiredWorkers"`
	Notes           string `json:"notes"`
}

func (p *shiftPayload) validate() string {
	if p.StartTime <= 0 || p.EndTime <= 0 {
		return "Start and end time are required"
	}
	if p.EndTime <= p.StartTime {
		return "End time must be after start time"
	}
	if p.RequiredWorkers < 0 {
		return "Required workers must not be negative"
	}
	return ""
}

// CreateShiftHandler создаёт смену с пустыми списками участников.
func CreateShiftHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload shiftPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
			return
		}
		if msg := payload.validate(); msg != "" {
			response.RespondWithError(w, http.StatusBadRequest, msg)
			return
		}

		shift := &models.Shift{
			ID:              uuid.NewString(),
			StartTime:       payload.StartTime,
			EndTime:         payload.EndTime,
			RequiredWorkers: payload.RequiredWorkers,
			Notes:           payload.Notes,
			Assigned:        []models.Member{},
			Pending:         []models.Member{},
		}
		if err := shifts.Create(r.Context(), shift); err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to create shift")
			return
		}
		response.RespondWithJSON(w, http.StatusCreated, shift)
	}
}

// UpdateShiftHandler меняет поля смены; списки участников не трогает.
func UpdateShiftHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shiftID := chi.URLParam(r, "shiftID")

		var payload shiftPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
			return
		}
		if msg := payload.validate(); msg != "" {
			response.RespondWithError(w, http.StatusBadRequest, msg)
			return
		}

		err := shifts.Update(r.Context(), shiftID, func(shift *models.Shift) error {
			shift.StartTime = payload.StartTime
			shift.EndTime = payload.EndTime
			shift.RequiredWorkers = payload.RequiredWorkers
			shift.Notes = payload.Notes
			return nil
		})
		if err == store.ErrNotFound {
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
			return
		}
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to update shift")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Shift updated"})
	}
}

func DeleteShiftHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shiftID := chi.URLParam(r, "shiftID")
		if err := shifts.Delete(r.Context(), shiftID); err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to delete shift")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Shift deleted"})
	}
}

func GetShiftHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shiftID := chi.URLParam(r, "shiftID")

		shift, err := shifts.GetByID(r.Context(), shiftID)
		if err == store.ErrNotFound {
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
			return
		}
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}

		response.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
			"shift":    shift,
			"duration": response.FormatHours(shift.EndTime - shift.StartTime),
		})
	}
}

// GetShiftsByDateHandler — смены выбранного дня, по возрастанию startTime.
func GetShiftsByDateHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
		if err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}

		list, err := shifts.ListByDay(r.Context(), day)
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, list)
	}
}

// GetUpcomingShiftsHandler — все будущие смены.
func GetUpcomingShiftsHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := shifts.ListUpcoming(r.Context(), time.Now().UnixMilli())
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, list)
	}
}

// GetMyShiftsHandler — будущие смены, где текущий пользователь утверждён.
func GetMyShiftsHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		list, err := shifts.ListAssignedSince(r.Context(), uid, time.Now().UnixMilli())
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, list)
	}
}
