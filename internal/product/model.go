package product

import "time"

type Product struct {
	ID          uint
	Name        string
	Description *string
	Quantity    int
	Price       float64
	SupplierID  *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// SupplierName is resolved by the list queries; nil when the product
	// has no supplier.
	SupplierName *string
}

// NewProductInput carries the product creation form fields. SupplierName,
// when set, must resolve to an existing supplier.
type NewProductInput struct {
	Name         string
	Description  *string
	Quantity     int
	Price        float64
	SupplierName *string
}
