package domain_test

import (
	"testing"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func item(id int, price string, amount int) domain.CartItem {
	return domain.CartItem{
		Product: domain.Product{ID: id, Price: decimal.RequireFromString(price)},
		Amount:  amount,
	}
}

func ids(c domain.Cart) []int {
	var out []int
	for _, it := range c.Items {
		out = append(out, it.ID)
	}
	return out
}

func TestCart_WithAmount_KeepsOrderAndReceiver(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{item(1, "10", 1), item(2, "5", 3), item(3, "1", 1)}}

	next := cart.WithAmount(2, 7)

	assert.Equal(t, []int{1, 2, 3}, ids(next))
	assert.Equal(t, 7, next.Amount(2))
	assert.Equal(t, 3, cart.Amount(2))
}

func TestCart_Append(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{item(1, "10", 1)}}

	next := cart.Append(item(9, "2", 1))

	assert.Equal(t, []int{1, 9}, ids(next))
	assert.Len(t, cart.Items, 1)
}

func TestCart_Without(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{item(1, "10", 1), item(2, "5", 3)}}

	next, removed := cart.Without(1)
	assert.True(t, removed)
	assert.Equal(t, []int{2}, ids(next))

	same, removed := next.Without(1)
	assert.False(t, removed)
	assert.Equal(t, []int{2}, ids(same))
}

func TestCart_FindAndAmounts(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{item(1, "10", 1), item(2, "5", 3)}}

	got, ok := cart.Find(2)
	assert.True(t, ok)
	assert.Equal(t, 3, got.Amount)

	_, ok = cart.Find(5)
	assert.False(t, ok)
	assert.False(t, cart.Contains(5))
	assert.Equal(t, 0, cart.Amount(5))

	assert.Equal(t, map[int]int{1: 1, 2: 3}, cart.Amounts())
}

func TestCart_Total(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{item(1, "179.90", 2), item(2, "0.10", 3)}}

	assert.True(t, decimal.RequireFromString("359.80").Equal(cart.Items[0].Subtotal()))

	total := cart.Total(currency.BRL)
	assert.True(t, decimal.RequireFromString("360.10").Equal(total.Amount), total.Amount.String())
	assert.Equal(t, currency.BRL, total.Currency)

	empty := domain.Cart{}.Total(currency.USD)
	assert.True(t, empty.Amount.IsZero())
}
