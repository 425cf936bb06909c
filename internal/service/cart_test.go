package service

import (
	"testing"

	"pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	espresso   = model.MenuItem{ID: 1, Name: "Espresso", Price: 15000, Category: model.CategoryCoffee}
	cappuccino = model.MenuItem{ID: 2, Name: "Cappuccino", Price: 25000, Category: model.CategoryCoffee}
	croissant  = model.MenuItem{ID: 5, Name: "Croissant", Price: 18000, Category: model.CategoryFood}
)

func TestCartAddIncrementsExistingLine(t *testing.T) {
	c := NewCart()
	c.Add(espresso)
	c.Add(cappuccino)
	line := c.Add(espresso)

	assert.Equal(t, 2, line.Quantity)
	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ID, "insertion order is kept")
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, int64(55000), c.Subtotal())
}

func TestCartSetQuantity(t *testing.T) {
	c := NewCart()
	c.Add(espresso)
	c.Add(croissant)

	require.NoError(t, c.SetQuantity(1, 4))
	assert.Equal(t, int64(4*15000+18000), c.Subtotal())

	require.NoError(t, c.SetQuantity(5, 0))
	assert.Len(t, c.Lines(), 1)

	require.NoError(t, c.SetQuantity(99, 3), "unknown ids are ignored")
	assert.Equal(t, 4, c.ItemCount())

	err := c.SetQuantity(1, -1)
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, NegativeQuantity, v.Kind)
	assert.Equal(t, 4, c.ItemCount())
}

func TestCartRemoveAndClear(t *testing.T) {
	c := NewCart()
	c.Add(espresso)
	c.Add(cappuccino)

	c.Remove(1)
	c.Remove(42)
	assert.Len(t, c.Lines(), 1)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Subtotal())
	assert.Zero(t, c.ItemCount())
}

// Subtotal and item count always agree with the lines, whatever the sequence of edits.
func TestCartTotalsMatchLines(t *testing.T) {
	items := []model.MenuItem{espresso, cappuccino, croissant}
	ops := []func(c *Cart){
		func(c *Cart) { c.Add(espresso) },
		func(c *Cart) { c.Add(croissant) },
		func(c *Cart) { _ = c.SetQuantity(1, 3) },
		func(c *Cart) { c.Add(cappuccino) },
		func(c *Cart) { c.Remove(5) },
		func(c *Cart) { _ = c.SetQuantity(2, 0) },
		func(c *Cart) { c.Add(items[2]) },
		func(c *Cart) { c.Add(items[2]) },
	}

	c := NewCart()
	for i, op := range ops {
		op(c)
		var sum int64
		count := 0
		ids := map[int64]bool{}
		for _, l := range c.Lines() {
			assert.GreaterOrEqual(t, l.Quantity, 1, "step %d", i)
			assert.False(t, ids[l.ID], "duplicate line at step %d", i)
			ids[l.ID] = true
			sum += l.Price * int64(l.Quantity)
			count += l.Quantity
		}
		assert.Equal(t, sum, c.Subtotal(), "step %d", i)
		assert.Equal(t, count, c.ItemCount(), "step %d", i)
	}
}

func TestCartSnapshotsMenuItem(t *testing.T) {
	item := model.MenuItem{ID: 7, Name: "Latte", Price: 28000, Ingredients: []string{"Milk"}}
	c := NewCart()
	c.Add(item)
	item.Ingredients[0] = "Oat Milk"

	assert.Equal(t, "Milk", c.Lines()[0].Ingredients[0])
}
