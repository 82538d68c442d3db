// internal/handlers/admin/employees.go
package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

// ListEmployeesHandler — все работники (без менеджеров), по алфавиту.
func ListEmployeesHandler(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := users.ListByRole(r.Context(), models.RoleEmployee)
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, list)
	}
}

// UpdateEmployeeHandler — менеджер правит имя, табельный номер и ставку.
func UpdateEmployeeHandler(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "userID")

		var body struct {
			FullName   string  `json:"fullName"`
			IDNumber   string  `json:"idNumber"`
			HourlyRate float64 `json:"hourlyRate"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
			return
		}
		if body.FullName == "" {
			response.RespondWithError(w, http.StatusBadRequest, "Full name is required")
			return
		}
		if body.HourlyRate < 0 {
			response.RespondWithError(w, http.StatusBadRequest, "Hourly rate must not be negative")
			return
		}

		err := users.Update(r.Context(), uid, func(user *models.User) error {
			user.FullName = body.FullName
			user.IDNumber = body.IDNumber
			user.HourlyRate = body.HourlyRate
			return nil
		})
		if err == store.ErrNotFound {
			response.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to update user")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee updated"})
	}
}

// DeleteEmployeeHandler удаляет профиль и учётные данные работника.
// Из списков смен его записи не вычищаются — как и в остальной системе,
// смены правятся только явными действиями.
func DeleteEmployeeHandler(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "userID")

		err := users.Delete(r.Context(), uid)
		if err == store.ErrNotFound {
			response.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to delete user")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted"})
	}
}
