// internal/handlers/shift/requests.go
package shift

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftsync/shiftsync_backend/internal/middleware"
	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	"github.com/shiftsync/shiftsync_backend/internal/services/signup"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

// RequestShiftHandler — заявка работника на смену. Имя берём из профиля,
// чтобы в pending лежало актуальное отображаемое имя.
func RequestShiftHandler(svc *signup.Service, users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		user, err := users.GetByUID(r.Context(), uid)
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "User not found")
			return
		}

		shiftID := chi.URLParam(r, "shiftID")
		err = svc.Request(r.Context(), shiftID, models.Member{ID: uid, Name: user.FullName})
		switch {
		case err == signup.ErrShiftFull:
			response.RespondWithError(w, http.StatusConflict, "Shift is already full")
		case err == store.ErrNotFound:
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
		case err != nil:
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to send request")
		default:
			response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Request sent"})
		}
	}
}

// CancelRequestHandler отзывает заявку до одобрения.
func CancelRequestHandler(svc *signup.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		shiftID := chi.URLParam(r, "shiftID")
		if err := svc.CancelRequest(r.Context(), shiftID, uid); err != nil {
			if err == store.ErrNotFound {
				response.RespondWithError(w, http.StatusNotFound, "Shift not found")
				return
			}
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to cancel request")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Request cancelled"})
	}
}

// CancelAssignmentHandler снимает себя с утверждённой смены.
func CancelAssignmentHandler(svc *signup.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		shiftID := chi.URLParam(r, "shiftID")
		if err := svc.CancelAssignment(r.Context(), shiftID, uid); err != nil {
			if err == store.ErrNotFound {
				response.RespondWithError(w, http.StatusNotFound, "Shift not found")
				return
			}
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to cancel assignment")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Assignment cancelled"})
	}
}

// ListShiftRequestsHandler — очередь заявок для менеджера: pending-списки
// будущих смен, развёрнутые в плоские строки "смена + работник".
func ListShiftRequestsHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upcoming, err := shifts.ListUpcoming(r.Context(), time.Now().UnixMilli())
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}

		items := make([]models.ShiftRequestItem, 0)
		for _, s := range upcoming {
			for _, m := range s.Pending {
				items = append(items, models.ShiftRequestItem{
					Shift:    s,
					UserID:   m.ID,
					UserName: m.Name,
				})
			}
		}
		response.RespondWithJSON(w, http.StatusOK, items)
	}
}

type requestActionBody struct {
	ShiftID  string `json:"shiftId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
}

func decodeRequestAction(w http.ResponseWriter, r *http.Request) (requestActionBody, bool) {
	var body requestActionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ShiftID == "" || body.UserID == "" {
		response.RespondWithError(w, http.StatusBadRequest, "shiftId and userId are required")
		return body, false
	}
	return body, true
}

// ApproveRequestHandler — одобрение заявки менеджером.
func ApproveRequestHandler(svc *signup.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeRequestAction(w, r)
		if !ok {
			return
		}

		err := svc.Approve(r.Context(), body.ShiftID, models.Member{ID: body.UserID, Name: body.UserName})
		switch {
		case err == signup.ErrShiftFull:
			response.RespondWithError(w, http.StatusConflict, "Shift is already full")
		case err == store.ErrNotFound:
			response.RespondWithError(w, http.StatusNotFound, "Shift not found")
		case err != nil:
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to approve request")
		default:
			response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Request approved"})
		}
	}
}

// DenyRequestHandler — отклонение заявки менеджером.
func DenyRequestHandler(svc *signup.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeRequestAction(w, r)
		if !ok {
			return
		}

		if err := svc.Deny(r.Context(), body.ShiftID, body.UserID); err != nil {
			if err == store.ErrNotFound {
				response.RespondWithError(w, http.StatusNotFound, "Shift not found")
				return
			}
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to deny request")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Request denied"})
	}
}

// RemoveAssignedHandler — менеджер снимает работника со смены.
func RemoveAssignedHandler(svc *signup.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shiftID := chi.URLParam(r, "shiftID")

		var body struct {
			UserID string `json:"userId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
			response.RespondWithError(w, http.StatusBadRequest, "userId is required")
			return
		}

		if err := svc.CancelAssignment(r.Context(), shiftID, body.UserID); err != nil {
			if err == store.ErrNotFound {
				response.RespondWithError(w, http.StatusNotFound, "Shift not found")
				return
			}
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to remove employee")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee removed from shift"})
	}
}
