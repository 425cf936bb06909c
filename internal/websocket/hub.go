package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const broadcastBuffer = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by CORS on the REST side; the token gates the socket.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the envelope pushed to clients.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
	At    time.Time   `json:"at"`
}

// Client represents a single connected WebSocket client
type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
	SessionID string
}

// Hub maintains the set of active clients and broadcasts store events to them.
// Only clients opened under the active session stay connected.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	sessionSet chan struct{}
	done       chan struct{}
	logger     *slog.Logger

	mu            sync.Mutex
	activeSession string
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		sessionSet: make(chan struct{}, 1),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// SetActiveSession records the live session id ("" when logged out) and
// disconnects clients of any other session. It never blocks.
func (h *Hub) SetActiveSession(id string) {
	h.mu.Lock()
	h.activeSession = id
	h.mu.Unlock()
	select {
	case h.sessionSet <- struct{}{}:
	default:
	}
}

func (h *Hub) active() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.activeSession
}

// Run dispatches until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			if client.SessionID == "" || client.SessionID != h.active() {
				close(client.Send)
				continue
			}
			h.clients[client] = true
			h.logger.Debug("websocket client connected", "clients", len(h.clients))
		case client := <-h.unregister:
			if h.clients[client] {
				h.drop(client)
				h.logger.Debug("websocket client disconnected", "clients", len(h.clients))
			}
		case <-h.sessionSet:
			h.dropStale()
		case message := <-h.broadcast:
			h.dropStale()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.Send)
}

func (h *Hub) dropStale() {
	active := h.active()
	for client := range h.clients {
		if client.SessionID != active {
			h.drop(client)
			h.logger.Info("websocket client closed, session ended")
		}
	}
}

// Publish queues an event for every connected client. It never blocks:
// when the queue is full the event is dropped.
func (h *Hub) Publish(event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, Data: data, At: time.Now()})
	if err != nil {
		h.logger.Error("failed to encode websocket event", "event", event, "error", err)
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("websocket queue full, dropping event", "event", event)
	}
}

// ClientCount is only safe to call when Run is not active.
func (h *Hub) ClientCount() int {
	return len(h.clients)
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump drains the connection so close frames are noticed.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		_ = c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("websocket read failed", "error", err)
			}
			return
		}
	}
}

// ServeWs upgrades the request once verify accepts the token query parameter.
// verify returns the session id the token belongs to.
func ServeWs(hub *Hub, c *gin.Context, verify func(token string) (string, error)) {
	tokenString := c.Query("token")
	if tokenString == "" {
		hub.logger.Info("websocket connection rejected: missing token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	sessionID, err := verify(tokenString)
	if err != nil {
		hub.logger.Info("websocket connection rejected", "error", err)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256), SessionID: sessionID}
	select {
	case hub.register <- client:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
