package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetBatch retrieves the products for the given identifiers, in the
	// same order as requested. Missing identifiers surface as an
	// ObjectNotFoundError naming the first one.
	GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// AdjustStock atomically changes the stock level by delta (negative
	// to reserve, positive to release). The adjustment is conditional:
	// it must not drive stock below zero, and a reservation that would do
	// so fails with a StockUnavailableError without changing anything.
	AdjustStock(ctx context.Context, id kernel.UUID, delta int) error
}
