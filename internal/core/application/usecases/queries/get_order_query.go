// Package queries contains read-only operations over the storage model.
// Query handlers read the database directly instead of going through
// repositories and aggregates; responses are plain projection structs.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// ErrOrderIDIsRequired is returned when the query is built without a key.
var ErrOrderIDIsRequired = errors.New("order id is required")

// GetOrderQuery retrieves one order by its business key, enriched with
// the carrier's live view when a shipment is booked.
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	if orderID == "" {
		return GetOrderQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the business key to look up.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// GetOrderItemResponse is one snapshot line of the order.
type GetOrderItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

// GetOrderQueryResponse is the read model of an order. Shipment is nil
// when the order has no booking or the carrier could not be reached.
type GetOrderQueryResponse struct {
	OrderID           string
	Items             []GetOrderItemResponse
	MerchandiseTotal  int64
	ShippingFee       int64
	DiscountCode      string
	DiscountAmount    int64
	TotalAmount       int64
	Address           string
	DistrictID        int
	WardCode          string
	ProvinceID        int
	ShipmentCode      string
	EstimatedLeadTime time.Time
	Status            string
	Shipment          *ports.ShipmentDetail
}
