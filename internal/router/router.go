package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"lumina-storefront/internal/handlers"
	"lumina-storefront/internal/middleware"
	"lumina-storefront/internal/websocket"
)

func New(
	sessionAuth *middleware.SessionAuth,
	assistantLimiter *middleware.RateLimiter,
	catalogHandler *handlers.CatalogHandler,
	sessionHandler *handlers.SessionHandler,
	cartHandler *handlers.CartHandler,
	quickViewHandler *handlers.QuickViewHandler,
	assistantHandler *handlers.AssistantHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Session bootstrap (public) ────
		r.Post("/sessions", sessionHandler.Create)

		// ──── Catalog Routes (public) ────
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/categories", catalogHandler.Categories)
			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/products/{id}", catalogHandler.GetProduct)
		})

		// ──── Session-scoped Routes ────
		r.Group(func(r chi.Router) {
			r.Use(sessionAuth.Middleware)

			r.Route("/session", func(r chi.Router) {
				r.Get("/", sessionHandler.Get)
				r.Delete("/", sessionHandler.Delete)
				r.Put("/category", sessionHandler.SelectCategory)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.Get)
				r.Post("/items", cartHandler.AddItem)
				r.Patch("/items/{id}", cartHandler.UpdateItem)
				r.Delete("/items/{id}", cartHandler.RemoveItem)
			})

			r.Route("/quick-view", func(r chi.Router) {
				r.Get("/", quickViewHandler.Get)
				r.Put("/", quickViewHandler.Open)
				r.Delete("/", quickViewHandler.Close)
				r.Post("/confirm", quickViewHandler.Confirm)
			})

			r.Route("/assistant", func(r chi.Router) {
				r.Get("/", assistantHandler.Get)
				r.With(assistantLimiter.Middleware).Post("/messages", assistantHandler.Submit)
			})
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
