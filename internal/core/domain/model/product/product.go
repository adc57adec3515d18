// Package product provides the Product entity read by the order workflow
// for price/name snapshots and stock verdicts. Stock is mutated only
// through the repository's conditional adjust operation, never on the
// entity itself.
package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is the catalog entry the workflow snapshots into order lines.
// The in-memory stock value is a read-time observation used for
// availability verdicts; the authoritative counter lives in storage.
type Product struct {
	id       kernel.UUID
	name     string
	price    int64
	stock    int
	isActive bool

	guard guard.ConstructorGuard
}

// NewProduct creates an active product with the given price and stock.
func NewProduct(id kernel.UUID, name string, price int64, stock int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is negative", price))
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}

	return &Product{
		id:       id,
		name:     name,
		price:    price,
		stock:    stock,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct rebuilds a product from persistence.
func RestoreProduct(id kernel.UUID, name string, price int64, stock int, isActive bool) (*Product, error) {
	p, err := NewProduct(id, name, price, stock)
	if err != nil {
		return nil, err
	}
	p.isActive = isActive
	return p, nil
}

// Validate ensures the Product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's identity.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p *Product) Price() int64 {
	return p.price
}

// Stock returns the stock level observed at load time.
func (p *Product) Stock() int {
	return p.stock
}

// IsActive reports whether the product can be ordered at all.
func (p *Product) IsActive() bool {
	return p.isActive
}
