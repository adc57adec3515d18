package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/discount"
)

// DiscountRepository defines the persistence contract for discount codes.
type DiscountRepository interface {
	// GetByCode retrieves a discount by its normalized code.
	// Returns an ObjectNotFoundError when no such code exists.
	GetByCode(ctx context.Context, code string) (*discount.Discount, error)

	// GetAllActiveAt retrieves every active discount whose validity
	// window contains the given instant. Used by the promotion listing.
	GetAllActiveAt(ctx context.Context, now time.Time) ([]*discount.Discount, error)

	// AdjustUsage atomically changes the usage counter by delta
	// (positive when an order applies the code, negative to release it).
	// The adjustment is conditional: it must keep the counter within
	// [0, usageLimit], and an increment past the limit fails without
	// changing anything.
	AdjustUsage(ctx context.Context, code string, delta int) error
}
