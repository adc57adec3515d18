// Package customer provides the Customer entity. Customers are keyed by
// phone number at the API boundary and created on first order when no
// record exists yet.
package customer

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the order recipient on record.
type Customer struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer record. Phone is the lookup key and is
// required; the address is the customer's default delivery address.
func NewCustomer(id kernel.UUID, name, phone, address string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}

	return &Customer{
		id:      id,
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer rebuilds a customer from persistence.
func RestoreCustomer(id kernel.UUID, name, phone, address string) (*Customer, error) {
	return NewCustomer(id, name, phone, address)
}

// Validate ensures the Customer was built through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's identity.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's default delivery address.
func (c *Customer) Address() string {
	return c.address
}
