package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumina-storefront/internal/handlers"
	"lumina-storefront/internal/middleware"
	"lumina-storefront/internal/models"
	"lumina-storefront/internal/repository"
	"lumina-storefront/internal/websocket"
)

type fixedAdvisor struct{}

func (fixedAdvisor) Advise(ctx context.Context, userText string) string {
	return "Try the Lumina Smart Speaker."
}

func newTestServer(t *testing.T, assistantLimit int) *httptest.Server {
	t.Helper()

	catalog := repository.NewProductRepo()
	sessions := repository.NewSessionRepo(time.Hour)
	auth := middleware.NewSessionAuth("router-test-secret")
	hub := websocket.NewHub(nil, auth, sessions, nil)
	limiter := middleware.NewRateLimiter(assistantLimit, time.Minute)
	t.Cleanup(limiter.Stop)

	h := New(
		auth,
		limiter,
		handlers.NewCatalogHandler(catalog),
		handlers.NewSessionHandler(sessions, catalog, fixedAdvisor{}, hub, auth, nil),
		handlers.NewCartHandler(sessions),
		handlers.NewQuickViewHandler(sessions),
		handlers.NewAssistantHandler(sessions),
		hub,
		"http://localhost:3000",
	)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, 5)

	resp := do(t, http.MethodGet, srv.URL+"/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestSessionRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t, 5)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/cart", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestStorefrontFlow(t *testing.T) {
	srv := newTestServer(t, 5)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/sessions", "", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created models.CreateSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	token := created.Token

	resp = do(t, http.MethodPut, srv.URL+"/api/v1/quick-view", token, models.QuickViewRequest{ProductID: "2"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("open quick view: expected 200, got %d", resp.StatusCode)
	}

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/quick-view/confirm", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("confirm: expected 200, got %d", resp.StatusCode)
	}

	resp = do(t, http.MethodPatch, srv.URL+"/api/v1/cart/items/2", token, models.UpdateQuantityRequest{Delta: 2})
	var cart models.CartView
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		t.Fatal(err)
	}
	if cart.ItemCount != 3 || cart.Subtotal != "$747.00" || cart.Total != cart.Subtotal {
		t.Fatalf("unexpected cart: %+v", cart)
	}

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/session", token, nil)
	var snap models.SessionSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.ID != created.Session.ID || snap.QuickView.Open || snap.Cart.ItemCount != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	resp = do(t, http.MethodDelete, srv.URL+"/api/v1/session", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	resp = do(t, http.MethodGet, srv.URL+"/api/v1/cart", token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestAssistantRateLimited(t *testing.T) {
	srv := newTestServer(t, 1)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/sessions", "", nil)
	var created models.CreateSessionResponse
	json.NewDecoder(resp.Body).Decode(&created)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/assistant/messages", created.Token, models.ChatRequest{Message: "hi"})
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	resp = do(t, http.MethodPost, srv.URL+"/api/v1/assistant/messages", created.Token, models.ChatRequest{Message: "again"})
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.StatusCode)
	}
}
