package domain

import (
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Cart keeps items in insertion order. Product ids are unique.
type Cart struct {
	Items []CartItem
}

type CartItem struct {
	Product
	Amount int `json:"amount"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Amount)))
}

func (c Cart) Find(productID int) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

func (c Cart) Contains(productID int) bool {
	_, ok := c.Find(productID)
	return ok
}

// Amount returns 0 when the product is not in the cart.
func (c Cart) Amount(productID int) int {
	item, _ := c.Find(productID)
	return item.Amount
}

func (c Cart) Amounts() map[int]int {
	amounts := make(map[int]int, len(c.Items))
	for _, item := range c.Items {
		amounts[item.ID] = item.Amount
	}
	return amounts
}

func (c Cart) Clone() Cart {
	return Cart{Items: slices.Clone(c.Items)}
}

// WithAmount replaces the amount of an existing item in place.
// The receiver is left untouched.
func (c Cart) WithAmount(productID, amount int) Cart {
	next := c.Clone()
	for i := range next.Items {
		if next.Items[i].ID == productID {
			next.Items[i].Amount = amount
		}
	}
	return next
}

func (c Cart) Append(item CartItem) Cart {
	next := c.Clone()
	next.Items = append(next.Items, item)
	return next
}

// Without reports false when nothing was removed.
func (c Cart) Without(productID int) (Cart, bool) {
	next := Cart{Items: make([]CartItem, 0, len(c.Items))}
	for _, item := range c.Items {
		if item.ID != productID {
			next.Items = append(next.Items, item)
		}
	}
	return next, len(next.Items) != len(c.Items)
}

func (c Cart) Total(unit currency.Unit) Money {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return Money{Amount: total, Currency: unit}
}
