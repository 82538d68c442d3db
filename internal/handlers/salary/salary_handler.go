// internal/handlers/salary/salary_handler.go
package salary

import (
	"log"
	"net/http"
	"time"

	"github.com/shiftsync/shiftsync_backend/internal/middleware"
	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	salaryService "github.com/shiftsync/shiftsync_backend/internal/services/salary"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

// GetSalaryHandler — оценка зарплаты за текущий месяц, считается заново
// при каждом запросе.
func GetSalaryHandler(svc *salaryService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		report, err := svc.MonthlyReport(r.Context(), uid, time.Now())
		if err == store.ErrNotFound {
			response.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
			return
		}
		response.RespondWithJSON(w, http.StatusOK, report)
	}
}

// ExportSalaryHandler отдаёт тот же отчёт файлом XLSX.
func ExportSalaryHandler(svc *salaryService.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		report, err := svc.MonthlyReport(r.Context(), uid, time.Now())
		if err == store.ErrNotFound {
			response.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Failed to build report")
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="salary_report.xlsx"`)
		if err := report.WriteXLSX(w); err != nil {
			// Заголовки уже отправлены, клиент получит оборванный файл
			log.Printf("Failed to write salary report: %v", err)
		}
	}
}
