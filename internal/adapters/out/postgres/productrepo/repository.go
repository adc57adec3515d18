package productrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBatch retrieves products for the given ids, preserving request order.
func (r *GormProductRepository) GetBatch(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ProductDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	products := make([]*product.Product, 0, len(ids))
	for i, id := range raw {
		dto, ok := byID[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", ids[i].String())
		}
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// AdjustStock atomically changes the stock level by delta. The UPDATE
// carries the floor condition, so a reservation racing another order
// either fully applies or leaves the row untouched.
func (r *GormProductRepository) AdjustStock(ctx context.Context, id kernel.UUID, delta int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock + ? >= 0", id.Bytes(), delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// the row either does not exist or the floor condition failed
	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	return errs.NewStockUnavailableError(id.String(), -delta, current.Stock())
}
