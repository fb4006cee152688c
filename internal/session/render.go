package session

import (
	"math"

	"github.com/shopspring/decimal"

	"lumina-storefront/internal/models"
)

// FormatPrice renders an amount the way the storefront displays it: "$1089.97".
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func RenderProductCard(p models.Product) models.ProductCard {
	return models.ProductCard{
		Product:      p,
		DisplayPrice: FormatPrice(p.Price),
		FilledStars:  int(math.Floor(p.Rating)),
	}
}

func RenderProductCards(products []models.Product) []models.ProductCard {
	cards := make([]models.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, RenderProductCard(p))
	}
	return cards
}

// RenderCart builds the cart drawer. Shipping is complimentary and no tax
// is applied, so the total equals the subtotal.
func RenderCart(c *Cart) models.CartView {
	lines := c.Lines()
	views := make([]models.CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, models.CartLineView{
			CartLine:  l,
			UnitPrice: FormatPrice(l.Price),
			LineTotal: FormatPrice(l.LineTotal()),
		})
	}
	subtotal := FormatPrice(c.Subtotal())
	return models.CartView{
		Lines:     views,
		ItemCount: c.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  "Complimentary",
		Total:     subtotal,
		Empty:     len(lines) == 0,
	}
}

func RenderQuickView(q *QuickView) models.QuickViewResponse {
	p := q.Subject()
	if p == nil {
		return models.QuickViewResponse{}
	}
	card := RenderProductCard(*p)
	return models.QuickViewResponse{Open: true, Product: &card}
}
