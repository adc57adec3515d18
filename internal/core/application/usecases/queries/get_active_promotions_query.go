package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrGetActivePromotionsQueryIsNotConstructed = errors.New(
	"GetActivePromotionsQuery must be created via NewGetActivePromotionsQuery constructor",
)

// GetActivePromotionsQuery lists the discount codes a customer can use
// right now: active, inside their validity window and not exhausted.
type GetActivePromotionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActivePromotionsQuery creates a parameterless promotion listing query.
func NewGetActivePromotionsQuery() GetActivePromotionsQuery {
	return GetActivePromotionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActivePromotionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePromotionsQueryIsNotConstructed)
}

// GetActivePromotionsQueryResponse is one usable promotion.
type GetActivePromotionsQueryResponse struct {
	Code              string
	Percentage        int
	MaxDiscountAmount int64
	MinOrderAmount    int64
	EndDate           time.Time
}
