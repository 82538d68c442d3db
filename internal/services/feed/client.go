// internal/services/feed/client.go
package feed

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client — одно websocket-подключение с собственным фильтром по дню.
type Client struct {
	Conn   *websocket.Conn
	Send   chan []byte
	UserID string

	mu  sync.Mutex
	day time.Time
}

func (c *Client) Day() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.day
}

// SetDay заменяет фильтр подписки. Прежний день больше не обслуживается —
// клиент "переподписался", параллельных подписок не остаётся.
func (c *Client) SetDay(day time.Time) {
	c.mu.Lock()
	c.day = day
	c.mu.Unlock()
}
