// Package discountrepo persists discount codes. The usage counter is
// mutated exclusively through a conditional UPDATE bounded by the usage
// limit, so concurrent orders cannot overspend a code.
package discountrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/discount"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DiscountDTO represents the database structure for persisting discounts.
type DiscountDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code              string    `gorm:"uniqueIndex"`
	Percentage        int
	MaxDiscountAmount int64
	MinOrderAmount    int64
	UsageLimit        int
	UsedCount         int
	StartDate         time.Time
	EndDate           time.Time
	IsActive          bool
}

// TableName overrides GORM's default naming convention to use "discounts".
func (DiscountDTO) TableName() string {
	return "discounts"
}

// FromDomain converts a discount entity to its database representation.
// Exported for test seeding.
func FromDomain(d *discount.Discount) DiscountDTO {
	return DiscountDTO{
		ID:                d.ID().Bytes(),
		Code:              d.Code(),
		Percentage:        d.Percentage(),
		MaxDiscountAmount: d.MaxDiscountAmount(),
		MinOrderAmount:    d.MinOrderAmount(),
		UsageLimit:        d.UsageLimit(),
		UsedCount:         d.UsedCount(),
		StartDate:         d.StartDate(),
		EndDate:           d.EndDate(),
		IsActive:          d.IsActive(),
	}
}

// toDomain converts a database row back into a discount entity.
func toDomain(dto DiscountDTO) (*discount.Discount, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return discount.RestoreDiscount(
		id, dto.Code, dto.Percentage, dto.MaxDiscountAmount, dto.MinOrderAmount,
		dto.UsageLimit, dto.UsedCount, dto.StartDate, dto.EndDate, dto.IsActive,
	)
}
