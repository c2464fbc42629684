package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidItem = errors.New("invalid item")

// Item is a named, priced value stored in a Cart. Names are not unique.
type Item struct {
	Name  string
	Price decimal.NullDecimal
}

func NewItem(name string, price decimal.Decimal) Item {
	return Item{
		Name:  name,
		Price: decimal.NewNullDecimal(price),
	}
}

// NewUnpricedItem builds an item without a price. A Cart refuses to hold it.
func NewUnpricedItem(name string) Item {
	return Item{Name: name}
}

func (i Item) Validate() error {
	if !i.Price.Valid {
		return fmt.Errorf("item[%s] has no price: %w", i.Name, ErrInvalidItem)
	}

	return nil
}

func (i Item) Equal(other Item) bool {
	if i.Name != other.Name || i.Price.Valid != other.Price.Valid {
		return false
	}

	return !i.Price.Valid || i.Price.Decimal.Equal(other.Price.Decimal)
}
