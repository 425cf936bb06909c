package service

import (
	"slices"

	"pos/internal/model"
)

// Cart is the in-progress order. Lines are keyed by menu item id and keep
// insertion order. The cart does not check stock.
type Cart struct {
	lines []model.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add increments the line for item, inserting it with quantity 1 when absent.
func (c *Cart) Add(item model.MenuItem) model.CartLine {
	if i := c.index(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return c.lines[i]
	}
	line := model.CartLine{MenuItem: cloneMenuItem(item), Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

// SetQuantity sets the quantity of an existing line. Zero removes the line.
// Unknown ids are ignored.
func (c *Cart) SetQuantity(id int64, qty int) error {
	if qty < 0 {
		return newValidationError("quantity", NegativeQuantity)
	}
	i := c.index(id)
	if i < 0 {
		return nil
	}
	if qty == 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
		return nil
	}
	c.lines[i].Quantity = qty
	return nil
}

// Remove deletes the line for id if present.
func (c *Cart) Remove(id int64) {
	if i := c.index(id); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	for i, l := range c.lines {
		l.MenuItem = cloneMenuItem(l.MenuItem)
		out[i] = l
	}
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount is the sum of line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() int64 {
	return subtotalOf(c.lines)
}

func (c *Cart) index(id int64) int {
	return slices.IndexFunc(c.lines, func(l model.CartLine) bool { return l.ID == id })
}

func subtotalOf(lines []model.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.LineTotal()
	}
	return total
}
