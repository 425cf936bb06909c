package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub(discardLogger())

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastBuffer*2; i++ {
			hub.Publish("stock.low", map[string]int{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
	assert.Zero(t, hub.ClientCount())
}

const liveSession = "session-1"

// startServer runs a hub with liveSession active; token "good" belongs to it.
func startServer(t *testing.T) (*Hub, string, context.CancelFunc) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(discardLogger())
	hub.SetActiveSession(liveSession)
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		ServeWs(hub, c, func(token string) (string, error) {
			if token != "good" {
				return "", errors.New("bad token")
			}
			return liveSession, nil
		})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws", cancel
}

// publishUntil keeps publishing until stop closes; registration races the dial returning.
func publishUntil(hub *Hub, stop <-chan struct{}) {
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			hub.Publish("transaction.created", map[string]int64{"id": 42})
		}
	}
}

func dialAndReadOne(t *testing.T, hub *Hub, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url+"?token=good", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	stop := make(chan struct{})
	go publishUntil(hub, stop)
	defer close(stop)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Event string           `json:"event"`
		Data  map[string]int64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "transaction.created", msg.Event)
	assert.Equal(t, int64(42), msg.Data["id"])
	return conn
}

// requireServerClose drains frames until the server closes the socket and
// returns what was received on the way.
func requireServerClose(t *testing.T, conn *websocket.Conn) []string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frames []string
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) {
				require.False(t, netErr.Timeout(), "server kept the socket open")
			}
			return frames
		}
		frames = append(frames, string(raw))
	}
}

func TestServeWsDeliversEvents(t *testing.T) {
	hub, url, _ := startServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(url+"?token=bad", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	dialAndReadOne(t, hub, url)
}

func TestSessionEndClosesSocket(t *testing.T) {
	hub, url, _ := startServer(t)
	conn := dialAndReadOne(t, hub, url)

	hub.SetActiveSession("")
	requireServerClose(t, conn)
}

func TestNewSessionClosesOldSockets(t *testing.T) {
	hub, url, _ := startServer(t)
	conn := dialAndReadOne(t, hub, url)

	hub.SetActiveSession("session-2")
	hub.Publish("transaction.created", map[string]string{"customer_phone": "0812"})

	for _, frame := range requireServerClose(t, conn) {
		assert.NotContains(t, frame, "customer_phone")
	}
}

func TestStaleSessionIsRefused(t *testing.T) {
	hub, url, _ := startServer(t)
	hub.SetActiveSession("session-2")

	conn, _, err := websocket.DefaultDialer.Dial(url+"?token=good", nil)
	require.NoError(t, err)
	defer conn.Close()

	hub.Publish("transaction.created", map[string]int64{"id": 7})
	assert.Empty(t, requireServerClose(t, conn))
}

func TestStoppedHubDoesNotBlock(t *testing.T) {
	hub, url, cancel := startServer(t)
	conn := dialAndReadOne(t, hub, url)

	cancel()
	<-hub.done
	requireServerClose(t, conn)

	// A late upgrade must not wait on a hub that is gone.
	done := make(chan struct{})
	go func() {
		defer close(done)
		late, _, err := websocket.DefaultDialer.Dial(url+"?token=good", nil)
		if err == nil {
			_ = late.SetReadDeadline(time.Now().Add(2 * time.Second))
			_, _, _ = late.ReadMessage()
			late.Close()
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("upgrade blocked after the hub stopped")
	}
}
