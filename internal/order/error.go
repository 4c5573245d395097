package order

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("order quantity must be greater than zero")
	ErrProductRequired = errors.New("order requires a product id or name")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
)
