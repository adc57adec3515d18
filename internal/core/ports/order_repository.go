// Package ports defines repository and gateway interfaces for the
// fulfillment domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are addressed by their business order ID, not the storage UUID.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByOrderID retrieves an order aggregate by its business order ID.
	// Returns an ObjectNotFoundError when no such order exists.
	GetByOrderID(ctx context.Context, orderID string) (*order.Order, error)

	// UpdateStatus writes just the status column of an order. Used for
	// carrier-driven status propagation where the full aggregate need
	// not be loaded.
	UpdateStatus(ctx context.Context, orderID string, status order.Status) error

	// GetAllWithShipmentInStatus retrieves orders that have a shipment
	// booked and currently sit in one of the given statuses. Used by the
	// shipment sync job to find orders worth polling.
	GetAllWithShipmentInStatus(ctx context.Context, statuses []order.Status) ([]*order.Order, error)

	// Delete removes an order by its business order ID. Used only to
	// compensate a failed creation; established orders are cancelled,
	// never deleted.
	Delete(ctx context.Context, orderID string) error
}
