package cart

import (
	"testing"

	"go-shop-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func product(name string, price float64) model.Product {
	p := model.Product{
		Name:         name,
		SellingPrice: price,
		StockQty:     10,
		IsActive:     true,
	}
	p.ID = uuid.New()
	return p
}

func TestAddMergesSameProduct(t *testing.T) {
	c := New()
	p := product("Pad Krapow", 55)

	c.Add(p)
	c.Add(p)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 2, c.TotalItems())
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New()
	first := product("Iced Tea", 25)
	second := product("Fried Rice", 50)

	c.Add(first)
	c.Add(second)
	c.Add(first)

	assert.Equal(t, first.ID, c.Items[0].ID)
	assert.Equal(t, second.ID, c.Items[1].ID)
}

func TestDecreaseRemovesAtQuantityOne(t *testing.T) {
	c := New()
	p := product("Iced Tea", 25)

	c.Add(p)
	c.Decrease(p.ID)

	assert.True(t, c.IsEmpty())
}

func TestDecreaseLowersQuantity(t *testing.T) {
	c := New()
	p := product("Iced Tea", 25)

	c.Add(p)
	c.Add(p)
	c.Decrease(p.ID)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestDecreaseAbsentIsNoop(t *testing.T) {
	c := New()
	c.Add(product("Iced Tea", 25))

	c.Decrease(uuid.New())

	assert.Equal(t, 1, c.TotalItems())
}

func TestRemove(t *testing.T) {
	c := New()
	keep := product("Iced Tea", 25)
	drop := product("Fried Rice", 50)

	c.Add(keep)
	c.Add(drop)
	c.Add(drop)
	c.Remove(drop.ID)
	c.Remove(uuid.New()) // absent id is a no-op

	assert.Len(t, c.Items, 1)
	assert.Equal(t, keep.ID, c.Items[0].ID)
}

func TestTotals(t *testing.T) {
	c := New()
	assert.Equal(t, 0.0, c.TotalPrice())
	assert.Equal(t, 0, c.TotalItems())

	tea := product("Iced Tea", 25)
	rice := product("Fried Rice", 50)
	c.Add(tea)
	c.Add(tea)
	c.Add(rice)

	assert.Equal(t, 100.0, c.TotalPrice())
	assert.Equal(t, 3, c.TotalItems())

	c.Clear()
	assert.Equal(t, 0.0, c.TotalPrice())
	assert.True(t, c.IsEmpty())
}

// Quantities must stay >= 1 under any mutation sequence.
func TestQuantityNeverBelowOne(t *testing.T) {
	c := New()
	a := product("A", 10)
	b := product("B", 20)

	c.Add(a)
	c.Add(b)
	c.Decrease(a.ID)
	c.Decrease(a.ID) // already gone
	c.Add(a)
	c.Add(a)
	c.Decrease(b.ID)
	c.Remove(b.ID)

	total := 0
	for _, item := range c.Items {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		total += item.Quantity
	}
	assert.Equal(t, total, c.TotalItems())
}
