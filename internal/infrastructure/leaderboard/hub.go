package leaderboard

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	pingInterval = 25 * time.Second
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	readLimit    = 1 << 10
	sendBuffer   = 16
)

var errConnClosed = errors.New("connection closed")

// Conn is a subscriber of the live feed
type Conn interface {
	Send(b []byte) error
	Close() error
}

// Hub fans top-list updates out to every subscriber. One goroutine (Run)
// owns the subscriber set; everything else talks to it over channels.
type Hub struct {
	register   chan Conn
	unregister chan Conn
	broadcast  chan []byte
	count      chan chan int
	done       chan struct{}
	clients    map[Conn]struct{}
}

// NewHub creates a hub; call Run to start it
func NewHub() *Hub {
	return &Hub{
		register:   make(chan Conn),
		unregister: make(chan Conn),
		broadcast:  make(chan []byte, 16),
		count:      make(chan chan int),
		done:       make(chan struct{}),
		clients:    make(map[Conn]struct{}),
	}
}

// Run serves the hub until ctx is cancelled, then closes every subscriber
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for c := range h.clients {
			_ = c.Close()
		}
		h.clients = nil
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				_ = c.Close()
			}
		case b := <-h.broadcast:
			var failed []Conn
			for c := range h.clients {
				if err := c.Send(b); err != nil {
					failed = append(failed, c)
				}
			}
			for _, c := range failed {
				delete(h.clients, c)
				_ = c.Close()
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

// Register adds a subscriber. It returns false if the hub has stopped.
func (h *Hub) Register(c Conn) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes and closes a subscriber
func (h *Hub) Unregister(c Conn) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues a frame for every subscriber
func (h *Hub) Broadcast(b []byte) {
	select {
	case h.broadcast <- b:
	case <-h.done:
	}
}

// Count returns the number of subscribers, or 0 once the hub has stopped
func (h *Hub) Count() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Done is closed when Run returns
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

var upgrader = websocket.Upgrader{
	// The feed is read-only public data
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn pumps frames from a send queue to a websocket
type wsConn struct {
	conn   *websocket.Conn
	send   chan []byte
	closed chan struct{}
	once   sync.Once
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		closed: make(chan struct{}),
	}
}

// Send queues a frame. A full queue counts as a dead subscriber.
func (c *wsConn) Send(b []byte) error {
	select {
	case <-c.closed:
		return errConnClosed
	default:
	}
	select {
	case c.send <- b:
		return nil
	default:
		return errors.New("send queue full")
	}
}

func (c *wsConn) Close() error {
	var err error
	c.once.Do(func() {
		close(c.closed)
		err = c.conn.Close()
	})
	return err
}

// writePump writes queued frames and keeps the connection alive with pings
func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.closed:
			return
		case b := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

// readPump discards client messages and returns when the peer goes away
func (c *wsConn) readPump() {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live feed read: %v", err)
			}
			return
		}
	}
}
