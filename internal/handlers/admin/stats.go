// internal/handlers/admin/stats.go
package admin

import (
	"net/http"
	"time"

	"github.com/shiftsync/shiftsync_backend/internal/pkg/response"
	"github.com/shiftsync/shiftsync_backend/internal/repositories"
	"github.com/shiftsync/shiftsync_backend/internal/services/salary"
)

// DashboardStatsHandler — сводка менеджера за текущий месяц: сколько смен,
// сколько из них укомплектовано и сколько работников не хватает суммарно.
func DashboardStatsHandler(shifts *repositories.ShiftRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monthStart := salary.StartOfMonth(time.Now())
		monthEnd := monthStart.AddDate(0, 1, 0)

		list, err := shifts.ListInRange(r.Context(), monthStart.UnixMilli(), monthEnd.UnixMilli())
		if err != nil {
			response.RespondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}

		total := 0
		full := 0
		missing := 0
		for _, s := range list {
			total++
			if s.IsFull() {
				full++
			} else {
				missing += s.RequiredWorkers - len(s.Assigned)
			}
		}

		response.RespondWithJSON(w, http.StatusOK, map[string]int{
			"totalShifts":    total,
			"fullShifts":     full,
			"missingWorkers": missing,
		})
	}
}
