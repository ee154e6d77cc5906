package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/nikolayk812/cartstate-demo/internal/port"
	"golang.org/x/text/currency"
)

type Options struct {
	Stock       port.StockOracle
	Products    port.ProductReader
	Persistence port.CartPersistence
	Notifier    port.Notifier
	Currency    currency.Unit
	Logger      *slog.Logger
}

// Store is the single authoritative cart of a session.
//
// Every operation reads the cart as it was when the operation started, waits
// for its backend reads without holding the lock, then applies and persists
// the result in one locked step. Overlapping operations on the same product
// are not serialized beyond that: the later one may overwrite the earlier.
type Store struct {
	mu   sync.Mutex
	cart domain.Cart

	stock       port.StockOracle
	products    port.ProductReader
	persistence port.CartPersistence
	notifier    port.Notifier
	currency    currency.Unit
	log         *slog.Logger
}

// NewStore restores the cart from persistence.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	if opts.Stock == nil {
		return nil, fmt.Errorf("stock oracle is nil")
	}
	if opts.Products == nil {
		return nil, fmt.Errorf("product reader is nil")
	}
	if opts.Persistence == nil {
		return nil, fmt.Errorf("persistence is nil")
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}

	unit := opts.Currency
	if unit == (currency.Unit{}) {
		unit = currency.BRL
	}

	return &Store{
		cart:        opts.Persistence.Load(ctx),
		stock:       opts.Stock,
		products:    opts.Products,
		persistence: opts.Persistence,
		notifier:    notifier,
		currency:    unit,
		log:         log,
	}, nil
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Clone()
}

func (s *Store) Total() domain.Money {
	return s.Cart().Total(s.currency)
}

// AddProduct increments the product's amount, adding it with amount 1 when absent.
func (s *Store) AddProduct(ctx context.Context, productID int) (domain.Cart, error) {
	current := s.Cart().Amount(productID)

	return s.UpdateProductAmount(ctx, domain.AmountUpdate{
		ProductID: productID,
		Amount:    current + 1,
	})
}

// RemoveProduct fails with domain.ErrNotFound when the product is not in the cart.
func (s *Store) RemoveProduct(ctx context.Context, productID int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := s.cart.Without(productID)
	if !removed {
		return s.reject(ctx, productID, domain.ErrNotFound)
	}

	return s.apply(ctx, next), nil
}

// UpdateProductAmount sets the amount of the product after checking stock.
// A product not yet in the cart is appended with amount 1 whatever the
// requested amount. No lower bound is applied to the amount.
func (s *Store) UpdateProductAmount(ctx context.Context, update domain.AmountUpdate) (domain.Cart, error) {
	snapshot := s.Cart()

	available, err := s.stock.CheckAvailability(ctx, update.ProductID, update.Amount)
	if err != nil {
		return s.rejectLocked(ctx, update.ProductID, errors.Join(domain.ErrOutOfStock, err))
	}
	if !available {
		return s.rejectLocked(ctx, update.ProductID,
			fmt.Errorf("product[%d] amount[%d]: %w", update.ProductID, update.Amount, domain.ErrOutOfStock))
	}

	product, err := s.products.GetProduct(ctx, update.ProductID)
	if err != nil {
		return s.rejectLocked(ctx, update.ProductID, errors.Join(domain.ErrProductUnavailable, err))
	}

	var next domain.Cart
	if snapshot.Contains(update.ProductID) {
		next = snapshot.WithAmount(update.ProductID, update.Amount)
	} else {
		next = snapshot.Append(domain.CartItem{Product: product, Amount: 1})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(ctx, next), nil
}

// apply must be called with s.mu held.
func (s *Store) apply(ctx context.Context, next domain.Cart) domain.Cart {
	s.cart = next

	if err := s.persistence.Save(ctx, next); err != nil {
		s.log.WarnContext(ctx, "cart not persisted", "error", err)
	}

	return next.Clone()
}

func (s *Store) rejectLocked(ctx context.Context, productID int, err error) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reject(ctx, productID, err)
}

// reject must be called with s.mu held.
func (s *Store) reject(ctx context.Context, productID int, err error) (domain.Cart, error) {
	s.log.InfoContext(ctx, "cart operation rejected", "product_id", productID, "error", err)

	if n, ok := domain.NewNotification(productID, err); ok {
		s.notifier.Notify(ctx, n)
	}

	return s.cart.Clone(), err
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, domain.Notification) {}
