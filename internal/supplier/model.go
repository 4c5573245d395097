package supplier

import "time"

type Supplier struct {
	ID            uint
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	CreatedAt     time.Time
}

// NewSupplierInput carries the supplier creation form fields. Only the
// name is required; contact fields are stored as provided.
type NewSupplierInput struct {
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
}
