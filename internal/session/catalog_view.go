package session

import "lumina-storefront/internal/models"

// FilterProducts returns products when category is "All", otherwise the
// products whose category equals it exactly (case-sensitive).
func FilterProducts(products []models.Product, category string) []models.Product {
	if category == models.CategoryAll {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// CatalogView tracks the selected category.
type CatalogView struct {
	category string
}

func NewCatalogView() CatalogView {
	return CatalogView{category: models.CategoryAll}
}

func (v *CatalogView) Select(category string) {
	v.category = category
}

func (v *CatalogView) Category() string {
	return v.category
}

func (v *CatalogView) Filtered(products []models.Product) []models.Product {
	return FilterProducts(products, v.category)
}
