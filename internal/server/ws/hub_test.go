package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/polkiloo/cleanup/internal/domain/model"
	"github.com/polkiloo/cleanup/internal/server/http/dto"
)

func newTestServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewHub(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	engine := gin.New()
	engine.GET("/ws", hub.ServeWS)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.After(time.Second)
	for hub.Clients() != n {
		select {
		case <-deadline:
			t.Fatalf("expected %d clients, got %d", n, hub.Clients())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestHubBroadcastsNotifications(t *testing.T) {
	hub, srv := newTestServer(t)
	a := dial(t, srv)
	b := dial(t, srv)
	waitClients(t, hub, 2)

	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := hub.Publish(context.Background(), model.Notification{ID: "n1", Message: "Order #ABCDEF created", At: at}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		var got dto.NotificationResponse
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if got.ID != "n1" || got.Message != "Order #ABCDEF created" {
			t.Fatalf("unexpected payload %+v", got)
		}
	}
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, srv := newTestServer(t)
	conn := dial(t, srv)
	waitClients(t, hub, 1)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()
	waitClients(t, hub, 0)
}

func TestHubCloseDisconnectsClients(t *testing.T) {
	hub, srv := newTestServer(t)
	conn := dial(t, srv)
	waitClients(t, hub, 1)

	hub.Close()
	if hub.Clients() != 0 {
		t.Fatalf("expected no clients after close, got %d", hub.Clients())
	}

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected connection to be closed")
	}

	if err := hub.Publish(context.Background(), model.Notification{ID: "late"}); err != nil {
		t.Fatalf("publish after close failed: %v", err)
	}
}

func TestHubRejectsConnectionsAfterClose(t *testing.T) {
	hub, srv := newTestServer(t)
	hub.Close()

	conn := dial(t, srv)
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected connection to be closed")
	}
	if hub.Clients() != 0 {
		t.Fatalf("expected no clients, got %d", hub.Clients())
	}
}
