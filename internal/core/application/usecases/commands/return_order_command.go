package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents a request to send an order back after it
// reached the delivery leg.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to return the given order.
func NewReturnOrderCommand(orderID string) (ReturnOrderCommand, error) {
	if orderID == "" {
		return ReturnOrderCommand{}, ErrOrderIDIsRequired
	}

	return ReturnOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the business key of the order to return.
func (c ReturnOrderCommand) OrderID() string {
	return c.orderID
}
