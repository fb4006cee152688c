package repository

import (
	"errors"

	"github.com/shopspring/decimal"

	"lumina-storefront/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepo is the static, read-only catalog.
type ProductRepo struct {
	products   []models.Product
	byID       map[string]int
	categories []string
}

func NewProductRepo() *ProductRepo {
	return newProductRepo(defaultProducts(), defaultCategories)
}

func newProductRepo(products []models.Product, categories []string) *ProductRepo {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &ProductRepo{
		products:   products,
		byID:       byID,
		categories: categories,
	}
}

// List returns every product in catalog order. The returned slice is a copy.
func (r *ProductRepo) List() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Categories returns the category labels, "All" first.
func (r *ProductRepo) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// IsCategory reports whether label is one of the fixed category labels.
func (r *ProductRepo) IsCategory(label string) bool {
	for _, c := range r.categories {
		if c == label {
			return true
		}
	}
	return false
}

func (r *ProductRepo) GetByID(id string) (*models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

var defaultCategories = []string{models.CategoryAll, "Electronics", "Home", "Lifestyle", "Wearables"}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Aura Soundbar Pro",
			Price:       decimal.RequireFromString("499.99"),
			Description: "Immersive 3D spatial audio with deep bass and minimalist design. Perfect for cinematic home experiences.",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1545454675-3531b543be5d?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8,
			Stock:       12,
		},
		{
			ID:          "2",
			Name:        "Nebula Smart Watch",
			Price:       decimal.RequireFromString("249.00"),
			Description: "Advanced health tracking, sapphire glass, and 7-day battery life. Stay connected with elegance.",
			Category:    "Wearables",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&q=80&w=800",
			Rating:      4.5,
			Stock:       25,
		},
		{
			ID:          "3",
			Name:        "Zen Desk Lamp",
			Price:       decimal.RequireFromString("89.99"),
			Description: "Flicker-free adjustable LED lighting with wireless charging base. Designed for productivity and eye health.",
			Category:    "Home",
			Image:       "https://images.unsplash.com/photo-1534073828943-f801091bb18c?auto=format&fit=crop&q=80&w=800",
			Rating:      4.7,
			Stock:       50,
		},
		{
			ID:          "4",
			Name:        "Vortex VR Headset",
			Price:       decimal.RequireFromString("599.00"),
			Description: "Next-generation virtual reality with 8K resolution and ultra-low latency tracking.",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1622979135225-d2ba269cf1ac?auto=format&fit=crop&q=80&w=800",
			Rating:      4.9,
			Stock:       8,
		},
		{
			ID:          "5",
			Name:        "Luna Essential Oil Diffuser",
			Price:       decimal.RequireFromString("45.00"),
			Description: "Ultrasonic aromatherapy diffuser with ambient mood lighting. Transform your space into a spa.",
			Category:    "Home",
			Image:       "https://images.unsplash.com/photo-1602928321679-560bb453f190?auto=format&fit=crop&q=80&w=800",
			Rating:      4.4,
			Stock:       100,
		},
		{
			ID:          "6",
			Name:        "Horizon Backpack",
			Price:       decimal.RequireFromString("120.00"),
			Description: "Weatherproof premium canvas backpack with dedicated tech compartments and ergonomic support.",
			Category:    "Lifestyle",
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb94c6a62?auto=format&fit=crop&q=80&w=800",
			Rating:      4.6,
			Stock:       30,
		},
		{
			ID:          "7",
			Name:        "Titan Gaming Mouse",
			Price:       decimal.RequireFromString("75.00"),
			Description: "Lightweight honeycomb design with 26K DPI sensor and customizable RGB lighting.",
			Category:    "Electronics",
			Image:       "https://images.unsplash.com/photo-1527814050087-37a3c71cce49?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8,
			Stock:       42,
		},
		{
			ID:          "8",
			Name:        "Nova Smart Kettle",
			Price:       decimal.RequireFromString("135.00"),
			Description: "Precision temperature control with smartphone integration. Perfect for the tea connoisseur.",
			Category:    "Home",
			Image:       "https://images.unsplash.com/photo-1594212699903-ec8a3ecc50f1?auto=format&fit=crop&q=80&w=800",
			Rating:      4.3,
			Stock:       15,
		},
	}
}
