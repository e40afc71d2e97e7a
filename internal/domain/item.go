package domain

import (
	"github.com/oklog/ulid/v2"
)

// LineItem is one billable row on an invoice.
// IDs are opaque and unique within the invoice's item sequence;
// display order is insertion order.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// NewLineItem creates an empty line item with a freshly generated id.
func NewLineItem() LineItem {
	return LineItem{
		ID:       ulid.Make().String(),
		Quantity: 1,
		Price:    0,
	}
}
