package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/nikolayk812/cartstate-demo/internal/port"
)

// cartBridge keeps the cart as a JSON array of items in one named slot.
type cartBridge struct {
	slot port.Slot
	key  string
	log  *slog.Logger
}

func NewCartBridge(slot port.Slot, key string, log *slog.Logger) (port.CartPersistence, error) {
	if slot == nil {
		return nil, fmt.Errorf("slot is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}
	if log == nil {
		log = slog.Default()
	}

	return &cartBridge{
		slot: slot,
		key:  key,
		log:  log.With("slot", key),
	}, nil
}

// Load substitutes an empty cart for a missing, unreadable or corrupt value.
func (b *cartBridge) Load(ctx context.Context) domain.Cart {
	value, found, err := b.slot.Read(ctx, b.key)
	if err != nil {
		b.log.WarnContext(ctx, "cart slot read failed, starting empty", "error", err)
		return domain.Cart{}
	}
	if !found {
		return domain.Cart{}
	}

	cart, err := decodeCart(value)
	if err != nil {
		b.log.WarnContext(ctx, "stored cart discarded", "error", err)
		return domain.Cart{}
	}

	return cart
}

func (b *cartBridge) Save(ctx context.Context, cart domain.Cart) error {
	value, err := encodeCart(cart)
	if err != nil {
		return fmt.Errorf("encodeCart: %w", err)
	}

	if err := b.slot.Write(ctx, b.key, value); err != nil {
		return fmt.Errorf("slot.Write: %w", err)
	}

	return nil
}

func encodeCart(cart domain.Cart) ([]byte, error) {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	return json.Marshal(items)
}

func decodeCart(value []byte) (domain.Cart, error) {
	var items []domain.CartItem
	if err := json.Unmarshal(value, &items); err != nil {
		return domain.Cart{}, errors.Join(domain.ErrPersistenceReadCorrupt, err)
	}

	return domain.Cart{Items: items}, nil
}
