package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderCODCommandIsNotConstructed = errors.New(
		"UpdateOrderCODCommand must be created via NewUpdateOrderCODCommand constructor",
	)
	ErrCODAmountIsInvalid = errors.New("cod amount must not be negative")
)

// UpdateOrderCODCommand represents a request to change the cash amount
// the carrier collects on delivery.
type UpdateOrderCODCommand struct { //nolint:recvcheck //using for validation
	orderID string
	amount  int64

	guard guard.ConstructorGuard
}

// NewUpdateOrderCODCommand creates a command to change an order's COD amount.
func NewUpdateOrderCODCommand(orderID string, amount int64) (UpdateOrderCODCommand, error) {
	if orderID == "" {
		return UpdateOrderCODCommand{}, ErrOrderIDIsRequired
	}
	if amount < 0 {
		return UpdateOrderCODCommand{}, ErrCODAmountIsInvalid
	}

	return UpdateOrderCODCommand{
		orderID: orderID,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCODCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCODCommandIsNotConstructed)
}

// OrderID returns the business key of the order to change.
func (c UpdateOrderCODCommand) OrderID() string {
	return c.orderID
}

// Amount returns the new COD amount.
func (c UpdateOrderCODCommand) Amount() int64 {
	return c.amount
}
