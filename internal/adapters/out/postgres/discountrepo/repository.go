package discountrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDiscountRepository implements DiscountRepository using GORM.
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewGormDiscountRepository creates a new GORM discount repository.
func NewGormDiscountRepository(db *gorm.DB) *GormDiscountRepository {
	return &GormDiscountRepository{db: db}
}

// GetByCode retrieves a discount by its normalized code.
func (r *GormDiscountRepository) GetByCode(ctx context.Context, code string) (*discount.Discount, error) {
	code = discount.NormalizeCode(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto DiscountDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveAt retrieves active discounts whose window contains now.
func (r *GormDiscountRepository) GetAllActiveAt(ctx context.Context, now time.Time) ([]*discount.Discount, error) {
	var dtos []DiscountDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "is_active AND start_date <= ? AND end_date >= ?", now, now).Error; err != nil {
		return nil, err
	}

	discounts := make([]*discount.Discount, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}

	return discounts, nil
}

// AdjustUsage atomically changes the usage counter by delta. The UPDATE
// carries both bounds, so a code racing many orders never exceeds its
// limit and never drops below zero.
func (r *GormDiscountRepository) AdjustUsage(ctx context.Context, code string, delta int) error {
	code = discount.NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	result := r.db.WithContext(ctx).
		Model(&DiscountDTO{}).
		Where("code = ? AND used_count + ? >= 0 AND (usage_limit = 0 OR used_count + ? <= usage_limit)",
			code, delta, delta).
		Update("used_count", gorm.Expr("used_count + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// the row either does not exist or a bound blocked the adjustment
	if _, err := r.GetByCode(ctx, code); err != nil {
		return err
	}
	if delta > 0 {
		return discount.ErrUsageExhausted
	}
	return errs.NewValueIsInvalidError("usage delta")
}
