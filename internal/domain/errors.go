package domain

import "errors"

var (
	ErrOutOfStock             = errors.New("requested quantity exceeds stock")
	ErrProductUnavailable     = errors.New("could not add product")
	ErrNotFound               = errors.New("product does not exist in cart")
	ErrPersistenceReadCorrupt = errors.New("stored cart is corrupt")
)
