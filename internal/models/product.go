package models

import "github.com/shopspring/decimal"

// CategoryAll is the sentinel category meaning "no filter".
const CategoryAll = "All"

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      float64         `json:"rating"` // 0-5
	Stock       int             `json:"stock"`  // informational only, never enforced
}

// ProductCard is the rendered form of a product for grid tiles and the quick-view panel.
type ProductCard struct {
	Product
	DisplayPrice string `json:"display_price"`
	FilledStars  int    `json:"filled_stars"`
}

type SelectCategoryRequest struct {
	Category string `json:"category"`
}

type CategoryResponse struct {
	Category string        `json:"category"`
	Products []ProductCard `json:"products"`
}
