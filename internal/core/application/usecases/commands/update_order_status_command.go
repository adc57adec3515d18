package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a carrier-driven status write.
// Used when a webhook or poll reports the shipment's progress; it never
// triggers a carrier call of its own.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID string
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to set an order's status.
// The status must be one of the known lifecycle values.
func NewUpdateOrderStatusCommand(orderID string, status order.Status) (UpdateOrderStatusCommand, error) {
	if orderID == "" {
		return UpdateOrderStatusCommand{}, ErrOrderIDIsRequired
	}
	if err := status.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the business key of the order to update.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// Status returns the reported lifecycle status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
