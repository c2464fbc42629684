package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is an ordered collection of items. The zero value is an empty cart.
// It is not safe for concurrent use.
type Cart struct {
	items []Item
}

// Product is a catalog entry: the item a name resolves to.
type Product struct {
	ID uuid.UUID
	Item

	CreatedAt time.Time
}

// Add appends item to the end of the cart.
func (c *Cart) Add(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.items = append(c.items, item)

	return nil
}

// Remove drops every item named like item.
func (c *Cart) Remove(item Item) {
	c.RemoveByName(item.Name)
}

// RemoveByName drops every item with the given name and reports how many were removed.
func (c *Cart) RemoveByName(name string) int {
	before := len(c.items)

	c.items = slices.DeleteFunc(c.items, func(it Item) bool {
		return it.Name == name
	})

	return before - len(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total sums item prices. An empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero

	for _, it := range c.items {
		total = total.Add(it.Price.Decimal)
	}

	return total
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []Item {
	return slices.Clone(c.items)
}

func (c *Cart) Contains(item Item) bool {
	return slices.ContainsFunc(c.items, item.Equal)
}
