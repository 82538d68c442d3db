// internal/services/feed/feed.go
package feed

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shiftsync/shiftsync_backend/internal/models"
	"github.com/shiftsync/shiftsync_backend/internal/store"
)

type ShiftQuerier interface {
	ListByDay(ctx context.Context, day time.Time) ([]models.Shift, error)
}

// ShiftFeed — живая подписка на смены выбранного дня. После каждого
// изменения коллекции shifts каждому клиенту отправляется полный свежий
// список его дня: побеждает последний снимок, диффы не считаются.
type ShiftFeed struct {
	shifts ShiftQuerier

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	refresh    chan struct{}
	mu         sync.RWMutex
}

func NewShiftFeed(shifts ShiftQuerier, st store.Store) *ShiftFeed {
	f := &ShiftFeed{
		shifts:     shifts,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		refresh:    make(chan struct{}, 1),
	}
	st.Subscribe(func(c store.Change) {
		if c.Collection != "shifts" {
			return
		}
		// Несколько записей подряд схлопываются в одну рассылку
		select {
		case f.refresh <- struct{}{}:
		default:
		}
	})
	go f.Run()
	return f
}

func (f *ShiftFeed) Register(client *Client) {
	f.register <- client
}

func (f *ShiftFeed) Unregister(client *Client) {
	f.unregister <- client
}

func (f *ShiftFeed) Run() {
	for {
		select {
		case client := <-f.register:
			f.mu.Lock()
			f.clients[client] = true
			f.mu.Unlock()
			// Первый снимок сразу при подключении
			f.push(client)
		case client := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[client]; ok {
				delete(f.clients, client)
				close(client.Send)
			}
			f.mu.Unlock()
		case <-f.refresh:
			f.mu.RLock()
			for client := range f.clients {
				f.push(client)
			}
			f.mu.RUnlock()
		}
	}
}

// push отправляет клиенту полный список смен его дня.
func (f *ShiftFeed) push(client *Client) {
	day := client.Day()
	shifts, err := f.shifts.ListByDay(context.Background(), day)
	if err != nil {
		log.Printf("Failed to load shifts for feed: %v", err)
		return
	}

	data, _ := json.Marshal(map[string]interface{}{
		"type":   "shifts",
		"date":   day.Format("2006-01-02"),
		"shifts": shifts,
	})

	select {
	case client.Send <- data:
	default:
		// Клиент не успевает читать — этот снимок пропускаем, придёт следующий
	}
}

// ReadPump принимает от клиента смену дня: {"date":"2006-01-02"}.
func (f *ShiftFeed) ReadPump(client *Client) {
	defer func() {
		f.Unregister(client)
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}

		var req struct {
			Date string `json:"date"`
		}
		if err := json.Unmarshal(message, &req); err != nil {
			continue
		}
		day, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			continue
		}

		client.SetDay(day)
		f.push(client)
	}
}

func (f *ShiftFeed) WritePump(client *Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			client.Conn.WriteMessage(websocket.TextMessage, message)
		case <-ticker.C:
			client.Conn.WriteMessage(websocket.PingMessage, nil)
		}
	}
}
