package session

import "lumina-storefront/internal/models"

// QuickView holds at most one product being inspected.
type QuickView struct {
	subject *models.Product
}

func (q *QuickView) Open(p models.Product) {
	q.subject = &p
}

func (q *QuickView) Close() {
	q.subject = nil
}

// Subject returns the active product, or nil when closed.
func (q *QuickView) Subject() *models.Product {
	if q.subject == nil {
		return nil
	}
	p := *q.subject
	return &p
}

// Confirm adds the subject to cart and closes the view. It reports false
// and does nothing when no product is open.
func (q *QuickView) Confirm(cart CartMutator) bool {
	if q.subject == nil {
		return false
	}
	cart.AddToCart(*q.subject)
	q.Close()
	return true
}
