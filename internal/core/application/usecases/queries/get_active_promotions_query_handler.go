package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetActivePromotionsQueryHandler lists currently usable discount codes
// straight from the database, best percentage first.
type GetActivePromotionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActivePromotionsQueryHandler creates a handler for promotion listings.
func NewGetActivePromotionsQueryHandler(db *gorm.DB) GetActivePromotionsQueryHandler {
	return GetActivePromotionsQueryHandler{db: db}
}

// Handle executes the promotion listing.
func (h GetActivePromotionsQueryHandler) Handle(
	ctx context.Context,
	query GetActivePromotionsQuery,
) ([]GetActivePromotionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	promotions := make([]GetActivePromotionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			percentage,
			max_discount_amount,
			min_order_amount,
			end_date
		FROM discounts
		WHERE is_active
		  AND start_date <= ?
		  AND end_date >= ?
		  AND (usage_limit = 0 OR used_count < usage_limit)
		ORDER BY percentage DESC, code
	`, time.Now(), time.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var promo GetActivePromotionsQueryResponse
		if err = rows.Scan(
			&promo.Code,
			&promo.Percentage,
			&promo.MaxDiscountAmount,
			&promo.MinOrderAmount,
			&promo.EndDate,
		); err != nil {
			return nil, err
		}
		promotions = append(promotions, promo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return promotions, nil
}
