// Package cart holds the in-memory cart aggregator for one POS terminal.
// A cart is an ordered list of product snapshots with quantities; it is
// never persisted server-side beyond its key-value slot until checkout.
package cart

import (
	"go-shop-pos/internal/model"

	"github.com/google/uuid"
)

// Item is a product snapshot plus the quantity in the cart.
// Quantity is always >= 1; an item that would reach 0 is removed instead.
type Item struct {
	model.Product
	Quantity int `json:"quantity"`
}

// Cart is owned by a single terminal session and mutated synchronously.
type Cart struct {
	Items []Item `json:"items"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Add increments the quantity if the product is already in the cart,
// otherwise appends a new entry with quantity 1. Insertion order is
// preserved. Stock checks are the caller's responsibility.
func (c *Cart) Add(p model.Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, Item{Product: p, Quantity: 1})
}

// Decrease lowers the quantity by 1, removing the entry entirely when it
// would reach 0. Absent ids are a no-op.
func (c *Cart) Decrease(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			if c.Items[i].Quantity > 1 {
				c.Items[i].Quantity--
			} else {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			}
			return
		}
	}
}

// Remove drops the entry unconditionally if present.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalPrice sums selling_price * quantity over all entries.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.SellingPrice * float64(item.Quantity)
	}
	return total
}

// TotalItems sums the quantities over all entries.
func (c *Cart) TotalItems() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
