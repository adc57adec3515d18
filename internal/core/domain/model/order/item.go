package order

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Item is a line of an order. Name and unit price are snapshots frozen at
// order-creation time; they are never recomputed from live product data.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice int64
	lineTotal int64
}

// NewItem creates an order line snapshot. The line total is derived from
// quantity and unit price and stored, not recomputed later.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice int64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return Item{
		productID: productID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		lineTotal: int64(quantity) * unitPrice,
	}, nil
}

// RestoreItem rebuilds an item from persistence without recomputing the
// line total, so stored snapshots round-trip exactly.
func RestoreItem(productID kernel.UUID, name string, quantity int, unitPrice, lineTotal int64) Item {
	return Item{
		productID: productID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		lineTotal: lineTotal,
	}
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshot.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// LineTotal returns quantity times unit price as frozen at creation.
func (i Item) LineTotal() int64 {
	return i.lineTotal
}
