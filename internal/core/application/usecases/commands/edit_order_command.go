package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// EditOrderCommand represents a request to change an order's recipient
// and delivery destination.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	customerName  string
	customerPhone string
	destination   kernel.Destination

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit an order's recipient and
// destination fields.
func NewEditOrderCommand(
	orderID string,
	customerName string,
	customerPhone string,
	destination kernel.Destination,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setDestination(destination),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the business key of the order to edit.
func (c EditOrderCommand) OrderID() string {
	return c.orderID
}

// CustomerName returns the recipient's name.
func (c EditOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone.
func (c EditOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Destination returns the new delivery destination.
func (c EditOrderCommand) Destination() kernel.Destination {
	return c.destination
}

func (c *EditOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *EditOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = phone
	return nil
}

func (c *EditOrderCommand) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
