package domain

import (
	"errors"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	KindOutOfStock         NotificationKind = "out_of_stock"
	KindProductUnavailable NotificationKind = "product_unavailable"
	KindNotFound           NotificationKind = "not_found"
)

// Notification is a transient user-facing message about a rejected operation.
type Notification struct {
	ID        uuid.UUID
	Kind      NotificationKind
	ProductID int
	Message   string
	Err       error
}

// NewNotification classifies err. It reports false for errors outside the
// user-facing taxonomy.
func NewNotification(productID int, err error) (Notification, bool) {
	var kind NotificationKind
	var sentinel error

	switch {
	case errors.Is(err, ErrOutOfStock):
		kind, sentinel = KindOutOfStock, ErrOutOfStock
	case errors.Is(err, ErrProductUnavailable):
		kind, sentinel = KindProductUnavailable, ErrProductUnavailable
	case errors.Is(err, ErrNotFound):
		kind, sentinel = KindNotFound, ErrNotFound
	default:
		return Notification{}, false
	}

	return Notification{
		ID:        uuid.New(),
		Kind:      kind,
		ProductID: productID,
		Message:   sentinel.Error(),
		Err:       err,
	}, true
}
