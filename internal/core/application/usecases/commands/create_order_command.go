package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired = errors.New("customer phone is required")
	ErrItemsAreRequired        = errors.New("at least one item is required")
	ErrItemQuantityIsInvalid   = errors.New("item quantity must be greater than 0")
)

// ItemRequest is one requested order line: which product and how many.
type ItemRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new fulfillment order.
// Carries the recipient, the requested basket, the delivery destination,
// an optional preferred carrier service and candidate discount codes.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName       string
	customerPhone      string
	destination        kernel.Destination
	items              []ItemRequest
	requestedServiceID int
	discountCodes      []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the recipient fields, the destination and every item line.
// A zero requestedServiceID lets the carrier pick a default service;
// discountCodes may be empty.
func NewCreateOrderCommand(
	customerName string,
	customerPhone string,
	destination kernel.Destination,
	items []ItemRequest,
	requestedServiceID int,
	discountCodes []string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		requestedServiceID: requestedServiceID,
		discountCodes:      discountCodes,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setDestination(destination),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone, the customer lookup key.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Destination returns the delivery destination.
func (c CreateOrderCommand) Destination() kernel.Destination {
	return c.destination
}

// Items returns the requested basket.
func (c CreateOrderCommand) Items() []ItemRequest {
	return c.items
}

// RequestedServiceID returns the preferred carrier service, 0 when unset.
func (c CreateOrderCommand) RequestedServiceID() int {
	return c.requestedServiceID
}

// DiscountCodes returns the candidate discount codes in priority order.
func (c CreateOrderCommand) DiscountCodes() []string {
	return c.discountCodes
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrItemQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}
