package port

import (
	"context"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
)

type StockReader interface {
	GetStock(ctx context.Context, productID int) (domain.Stock, error)
}

type ProductReader interface {
	GetProduct(ctx context.Context, productID int) (domain.Product, error)
}

type StockOracle interface {
	CheckAvailability(ctx context.Context, productID, requestedAmount int) (bool, error)
}

// CartPersistence never fails on Load: a missing or unreadable cart is empty.
type CartPersistence interface {
	Load(ctx context.Context) domain.Cart
	Save(ctx context.Context, cart domain.Cart) error
}

// Slot is a durable key-value slot. Read reports found=false for a missing key.
type Slot interface {
	Read(ctx context.Context, key string) (value []byte, found bool, err error)
	Write(ctx context.Context, key string, value []byte) error
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
