package order

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID          uint
	ExternalID  uuid.UUID
	Reference   string
	OrderDate   time.Time
	Status      Status
	TotalAmount float64
	Items       []Item
}

// Item is one line of an order. UnitPrice is snapshotted from the product
// at order time and never re-read.
type Item struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// LineTotal is the quantity × unit-price amount for this line.
func (i Item) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// PlaceOrderInput selects a product by ID or by name (ID wins when both
// are set) and the quantity to order.
type PlaceOrderInput struct {
	ProductID   *uint
	ProductName *string
	Quantity    int
}
