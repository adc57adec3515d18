package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are looked up by phone number at the API boundary.
type CustomerRepository interface {
	// Add persists a new customer record.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// GetByPhone retrieves a customer by phone number.
	// Returns an ObjectNotFoundError when no such customer exists.
	GetByPhone(ctx context.Context, phone string) (*customer.Customer, error)
}
