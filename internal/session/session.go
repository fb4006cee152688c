// Package session holds the per-browser storefront state: cart, category
// filter, quick-view subject and assistant transcript.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"lumina-storefront/internal/models"
)

var ErrUnknownCategory = errors.New("unknown category")

// Catalog is the read-only product source a session renders from.
type Catalog interface {
	List() []models.Product
	GetByID(id string) (*models.Product, error)
	IsCategory(label string) bool
}

// Publisher delivers live-update events to the session's sockets.
type Publisher interface {
	PublishUpdate(ctx context.Context, sessionID uuid.UUID, msg models.WSMessage)
}

// Session is the state container for one storefront visit. Cart, category
// and quick view share one lock; the assistant locks separately so catalog
// and cart stay responsive while a reply is pending.
type Session struct {
	ID uuid.UUID

	catalog   Catalog
	publisher Publisher

	mu    sync.Mutex
	cart  Cart
	view  CatalogView
	quick QuickView

	assistant *Assistant
}

func New(id uuid.UUID, catalog Catalog, advisor Advisor, publisher Publisher) *Session {
	s := &Session{
		ID:        id,
		catalog:   catalog,
		publisher: publisher,
		view:      NewCatalogView(),
	}
	s.assistant = NewAssistant(advisor, func(models.ChatMessage) {
		s.publish(context.Background(), models.EventAssistantReply, s.assistant.Transcript())
	})
	return s
}

func (s *Session) Assistant() *Assistant {
	return s.assistant
}

func (s *Session) SelectCategory(category string) ([]models.ProductCard, error) {
	if !s.catalog.IsCategory(category) {
		return nil, ErrUnknownCategory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Select(category)
	return RenderProductCards(s.view.Filtered(s.catalog.List())), nil
}

func (s *Session) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Category()
}

// Products returns the catalog filtered by the selected category.
func (s *Session) Products() []models.ProductCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderProductCards(s.view.Filtered(s.catalog.List()))
}

func (s *Session) Cart() models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderCart(&s.cart)
}

func (s *Session) AddToCart(ctx context.Context, productID string) (models.CartView, error) {
	p, err := s.catalog.GetByID(productID)
	if err != nil {
		return models.CartView{}, err
	}
	return s.mutateCart(ctx, func(c CartMutator) { c.AddToCart(*p) }), nil
}

func (s *Session) UpdateQuantity(ctx context.Context, productID string, delta int) models.CartView {
	return s.mutateCart(ctx, func(c CartMutator) { c.UpdateQuantity(productID, delta) })
}

func (s *Session) RemoveItem(ctx context.Context, productID string) models.CartView {
	return s.mutateCart(ctx, func(c CartMutator) { c.RemoveItem(productID) })
}

func (s *Session) mutateCart(ctx context.Context, fn func(CartMutator)) models.CartView {
	s.mu.Lock()
	fn(&s.cart)
	view := RenderCart(&s.cart)
	s.mu.Unlock()

	s.publish(ctx, models.EventCartUpdated, view)
	return view
}

func (s *Session) QuickView() models.QuickViewResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RenderQuickView(&s.quick)
}

func (s *Session) OpenQuickView(ctx context.Context, productID string) (models.QuickViewResponse, error) {
	p, err := s.catalog.GetByID(productID)
	if err != nil {
		return models.QuickViewResponse{}, err
	}
	s.mu.Lock()
	s.quick.Open(*p)
	qv := RenderQuickView(&s.quick)
	s.mu.Unlock()

	s.publish(ctx, models.EventQuickViewChanged, qv)
	return qv, nil
}

func (s *Session) CloseQuickView(ctx context.Context) models.QuickViewResponse {
	s.mu.Lock()
	s.quick.Close()
	qv := RenderQuickView(&s.quick)
	s.mu.Unlock()

	s.publish(ctx, models.EventQuickViewChanged, qv)
	return qv
}

// ConfirmQuickView adds the quick-view subject to the cart and closes the
// view as one step. It reports false when nothing is open.
func (s *Session) ConfirmQuickView(ctx context.Context) (models.ConfirmQuickViewResponse, bool) {
	s.mu.Lock()
	ok := s.quick.Confirm(&s.cart)
	resp := models.ConfirmQuickViewResponse{
		Cart:      RenderCart(&s.cart),
		QuickView: RenderQuickView(&s.quick),
	}
	s.mu.Unlock()

	if ok {
		s.publish(ctx, models.EventCartUpdated, resp.Cart)
		s.publish(ctx, models.EventQuickViewChanged, resp.QuickView)
	}
	return resp, ok
}

func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	snap := models.SessionSnapshot{
		ID:        s.ID,
		Category:  s.view.Category(),
		Products:  RenderProductCards(s.view.Filtered(s.catalog.List())),
		Cart:      RenderCart(&s.cart),
		QuickView: RenderQuickView(&s.quick),
	}
	s.mu.Unlock()

	snap.Assistant = s.assistant.Transcript()
	return snap
}

func (s *Session) publish(ctx context.Context, eventType string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishUpdate(ctx, s.ID, models.WSMessage{Type: eventType, Payload: payload})
}
