package supplier

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired = errors.New("supplier name cannot be empty")

	// -- Resource State --
	ErrSupplierNotFound = errors.New("supplier not found")
)
