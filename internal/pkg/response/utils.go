// internal/pkg/response/utils.go
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Универсальные ответы
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	data, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

// FormatHours — часы с минутами для человекочитаемых полей ("7 ч 30 мин").
func FormatHours(ms int64) string {
	if ms <= 0 {
		return "0 мин"
	}
	totalMins := ms / (1000 * 60)
	hours := totalMins / 60
	mins := totalMins % 60
	if hours > 0 {
		return fmt.Sprintf("%d ч %d мин", hours, mins)
	}
	return fmt.Sprintf("%d мин", mins)
}
