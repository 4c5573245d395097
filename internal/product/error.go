package product

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired    = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("product price cannot be negative")
	ErrInvalidQuantity = errors.New("product quantity cannot be negative")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
