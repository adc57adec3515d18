// Package productrepo persists products. The stock counter is mutated
// exclusively through a conditional UPDATE so concurrent reservations can
// never drive it negative.
package productrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Price    int64
	Stock    int
	IsActive bool
}

// TableName overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// FromDomain converts a product entity to its database representation.
// Exported for test seeding.
func FromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID().Bytes(),
		Name:     p.Name(),
		Price:    p.Price(),
		Stock:    p.Stock(),
		IsActive: p.IsActive(),
	}
}

// toDomain converts a database row back into a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, dto.Name, dto.Price, dto.Stock, dto.IsActive)
}
