package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"lumina-storefront/internal/models"
	"lumina-storefront/internal/session"
)

type stubTokens map[string]uuid.UUID

func (s stubTokens) ParseToken(token string) (uuid.UUID, error) {
	id, ok := s[token]
	if !ok {
		return uuid.Nil, errors.New("bad token")
	}
	return id, nil
}

type stubSessions map[uuid.UUID]bool

func (s stubSessions) Get(id uuid.UUID) (*session.Session, error) {
	if !s[id] {
		return nil, errors.New("no session")
	}
	return session.New(id, nil, nil, nil), nil
}

func TestHub_RejectsMissingOrBadToken(t *testing.T) {
	h := NewHub(nil, stubTokens{}, stubSessions{}, nil)

	for _, target := range []string{"/api/v1/ws", "/api/v1/ws?token=nope"} {
		rr := httptest.NewRecorder()
		h.HandleWebSocket(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", target, rr.Code)
		}
	}
}

func TestHub_RejectsEndedSession(t *testing.T) {
	id := uuid.New()
	h := NewHub(nil, stubTokens{"stale": id}, stubSessions{}, nil)

	rr := httptest.NewRecorder()
	h.HandleWebSocket(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ws?token=stale", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an ended session, got %d", rr.Code)
	}
	if h.ConnectionCount(id) != 0 {
		t.Fatalf("no connection should be registered")
	}
}

func TestHub_DeliversLocally(t *testing.T) {
	id := uuid.New()
	h := NewHub(nil, stubTokens{"good": id}, stubSessions{id: true}, nil)

	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?token=good"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for h.ConnectionCount(id) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("connection never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	h.PublishUpdate(context.Background(), id, models.WSMessage{
		Type:    models.EventAssistantReply,
		Payload: map[string]string{"content": "hi"},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var msg struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.Type != models.EventAssistantReply || msg.Payload["content"] != "hi" {
		t.Fatalf("unexpected message: %+v", msg)
	}

	// Another session's events never reach this socket.
	h.PublishUpdate(context.Background(), uuid.New(), models.WSMessage{Type: models.EventCartUpdated})
	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatalf("received an event for a different session")
	}
}
