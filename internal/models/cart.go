package models

import "github.com/shopspring/decimal"

// CartLine is a product in the cart with its quantity. Quantity is always >= 1.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price × quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartLineView is a rendered cart drawer row.
type CartLineView struct {
	CartLine
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

// CartView is the rendered cart drawer.
type CartView struct {
	Lines     []CartLineView `json:"lines"`
	ItemCount int            `json:"item_count"`
	Subtotal  string         `json:"subtotal"`
	Shipping  string         `json:"shipping"`
	Total     string         `json:"total"`
	Empty     bool           `json:"empty"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}
