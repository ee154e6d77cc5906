package cart_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/cartstate-demo/internal/backend"
	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// fakeBackend serves stock and products from memory.
type fakeBackend struct {
	mu       sync.Mutex
	stock    map[int]int
	products map[int]domain.Product
	stockErr error

	// beforeStock runs before every stock read when set.
	beforeStock func()
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		stock:    make(map[int]int),
		products: make(map[int]domain.Product),
	}
}

func (b *fakeBackend) withProduct(id, stock int) *fakeBackend {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stock[id] = stock
	b.products[id] = randomProduct(id)
	return b
}

func (b *fakeBackend) GetStock(_ context.Context, productID int) (domain.Stock, error) {
	if b.beforeStock != nil {
		b.beforeStock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stockErr != nil {
		return domain.Stock{}, b.stockErr
	}
	amount, ok := b.stock[productID]
	if !ok {
		return domain.Stock{}, fmt.Errorf("stock[%d]: %w", productID, backend.ErrNotFound)
	}
	return domain.Stock{ProductID: productID, Amount: amount}, nil
}

func (b *fakeBackend) GetProduct(_ context.Context, productID int) (domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.products[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%d]: %w", productID, backend.ErrNotFound)
	}
	return p, nil
}

// recordingPersistence keeps every saved cart.
type recordingPersistence struct {
	mu      sync.Mutex
	initial domain.Cart
	saves   []domain.Cart
	saveErr error
}

func (p *recordingPersistence) Load(context.Context) domain.Cart {
	return p.initial
}

func (p *recordingPersistence) Save(_ context.Context, cart domain.Cart) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.saveErr != nil {
		return p.saveErr
	}
	p.saves = append(p.saves, cart.Clone())
	return nil
}

func (p *recordingPersistence) saveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.saves)
}

func (p *recordingPersistence) lastSave() domain.Cart {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.saves) == 0 {
		return domain.Cart{}
	}
	return p.saves[len(p.saves)-1]
}

func randomProduct(id int) domain.Product {
	return domain.Product{
		ID:    id,
		Title: gofakeit.ProductName(),
		Price: decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		Image: gofakeit.URL(),
	}
}
