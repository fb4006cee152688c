package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lumina-storefront/internal/models"
)

var errNoProduct = errors.New("no such product")

type stubCatalog struct {
	products []models.Product
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{products: []models.Product{
		{ID: "1", Name: "Aura Soundbar Pro", Price: decimal.RequireFromString("499.99"), Category: "Electronics", Rating: 4.8},
		{ID: "2", Name: "Nebula Smart Watch", Price: decimal.RequireFromString("249.00"), Category: "Wearables", Rating: 4.5},
		{ID: "3", Name: "Zen Desk Lamp", Price: decimal.RequireFromString("89.99"), Category: "Home", Rating: 4.7},
		{ID: "4", Name: "Vortex VR Headset", Price: decimal.RequireFromString("599.00"), Category: "Electronics", Rating: 4.9},
	}}
}

func (c *stubCatalog) List() []models.Product {
	return c.products
}

func (c *stubCatalog) GetByID(id string) (*models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, errNoProduct
}

func (c *stubCatalog) IsCategory(label string) bool {
	switch label {
	case models.CategoryAll, "Electronics", "Home", "Lifestyle", "Wearables":
		return true
	}
	return false
}

// stubAdvisor blocks each Advise call until release is closed, if set.
type stubAdvisor struct {
	mu      sync.Mutex
	reply   string
	release chan struct{}
	calls   []string
}

func (a *stubAdvisor) Advise(ctx context.Context, userText string) string {
	a.mu.Lock()
	a.calls = append(a.calls, userText)
	release := a.release
	a.mu.Unlock()
	if release != nil {
		<-release
	}
	return a.reply
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.WSMessage
}

func (p *recordingPublisher) PublishUpdate(ctx context.Context, sessionID uuid.UUID, msg models.WSMessage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, msg)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
