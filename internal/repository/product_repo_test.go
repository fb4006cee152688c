package repository

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"lumina-storefront/internal/models"
)

func TestProductRepo_Catalog(t *testing.T) {
	r := NewProductRepo()

	products := r.List()
	if len(products) != 8 {
		t.Fatalf("expected 8 products, got %d", len(products))
	}
	for i, p := range products {
		if p.Price.IsNegative() {
			t.Errorf("product %s has negative price", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			t.Errorf("product %s has rating %v", p.ID, p.Rating)
		}
		if !r.IsCategory(p.Category) {
			t.Errorf("product %s has unknown category %q", p.ID, p.Category)
		}
		if i > 0 && products[i-1].ID >= p.ID {
			t.Errorf("products out of order at %d", i)
		}
	}

	cats := r.Categories()
	if len(cats) != 5 || cats[0] != models.CategoryAll {
		t.Fatalf("unexpected categories: %v", cats)
	}
}

func TestProductRepo_GetByID(t *testing.T) {
	r := NewProductRepo()

	p, err := r.GetByID("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Aura Soundbar Pro" || !p.Price.Equal(decimal.RequireFromString("499.99")) {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := r.GetByID("99"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepo_ListIsACopy(t *testing.T) {
	r := NewProductRepo()
	list := r.List()
	list[0].Name = "changed"

	p, _ := r.GetByID("1")
	if p.Name == "changed" {
		t.Fatalf("catalog must not be mutable through List")
	}
}

func TestProductRepo_IsCategory(t *testing.T) {
	r := NewProductRepo()
	tests := []struct {
		label string
		want  bool
	}{
		{"All", true},
		{"Home", true},
		{"home", false},
		{"Toys", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := r.IsCategory(tc.label); got != tc.want {
			t.Errorf("IsCategory(%q) = %v, want %v", tc.label, got, tc.want)
		}
	}
}
