// internal/handlers/ws/websocket.go
package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shiftsync/shiftsync_backend/internal/middleware"
	"github.com/shiftsync/shiftsync_backend/internal/services/feed"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ShiftFeedHandler — живая подписка на смены дня. День задаётся параметром
// ?date=YYYY-MM-DD (по умолчанию сегодня) и может меняться сообщением
// {"date":"..."} без переподключения.
func ShiftFeedHandler(shiftFeed *feed.ShiftFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.GetUserID(r.Context())
		if !ok {
			http.Error(w, "invalid user", http.StatusUnauthorized)
			return
		}

		day := time.Now()
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = parsed
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("Upgrade error:", err)
			return
		}

		client := &feed.Client{
			Conn:   conn,
			Send:   make(chan []byte, 256),
			UserID: uid,
		}
		client.SetDay(day)

		shiftFeed.Register(client)

		go shiftFeed.ReadPump(client)
		go shiftFeed.WritePump(client)
	}
}
