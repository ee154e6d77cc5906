package domain

import "github.com/shopspring/decimal"

// Product is owned by the backend and cached inside cart items.
type Product struct {
	ID    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

type Stock struct {
	ProductID int `json:"-"`
	Amount    int `json:"amount"`
}

type AmountUpdate struct {
	ProductID int
	Amount    int
}
