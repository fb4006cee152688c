package models

import "github.com/google/uuid"

// QuickViewResponse holds the active quick-view subject, if any.
type QuickViewResponse struct {
	Open    bool         `json:"open"`
	Product *ProductCard `json:"product,omitempty"`
}

type QuickViewRequest struct {
	ProductID string `json:"product_id"`
}

type ConfirmQuickViewResponse struct {
	Cart      CartView          `json:"cart"`
	QuickView QuickViewResponse `json:"quick_view"`
}

// SessionSnapshot is everything a client needs to render the storefront.
type SessionSnapshot struct {
	ID        uuid.UUID          `json:"id"`
	Category  string             `json:"category"`
	Products  []ProductCard      `json:"products"`
	Cart      CartView           `json:"cart"`
	QuickView QuickViewResponse  `json:"quick_view"`
	Assistant TranscriptResponse `json:"assistant"`
}

type CreateSessionResponse struct {
	Token   string          `json:"token"`
	Session SessionSnapshot `json:"session"`
}
