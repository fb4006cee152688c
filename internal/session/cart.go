package session

import (
	"math"

	"github.com/shopspring/decimal"

	"lumina-storefront/internal/models"
)

// CartMutator is the capability views use to change the cart.
type CartMutator interface {
	AddToCart(p models.Product)
	UpdateQuantity(id string, delta int)
	RemoveItem(id string)
}

// Cart holds at most one line per product id, ordered by first add.
// It is not safe for concurrent use; Session serializes access.
type Cart struct {
	lines []models.CartLine
}

var _ CartMutator = (*Cart)(nil)

func (c *Cart) AddToCart(p models.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		if c.lines[i].Quantity < math.MaxInt {
			c.lines[i].Quantity++
		}
		return
	}
	c.lines = append(c.lines, models.CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity to max(1, quantity+delta), saturating at
// math.MaxInt. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, delta int) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	q := c.lines[i].Quantity
	if delta > 0 && q > math.MaxInt-delta {
		c.lines[i].Quantity = math.MaxInt
		return
	}
	c.lines[i].Quantity = max(1, q+delta)
}

// RemoveItem deletes the line for id. Unknown ids are ignored.
func (c *Cart) RemoveItem(id string) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount sums quantities, saturating at math.MaxInt.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		if n > math.MaxInt-l.Quantity {
			return math.MaxInt
		}
		n += l.Quantity
	}
	return n
}

// Subtotal is recomputed on every call.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

func (c *Cart) indexOf(id string) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}
