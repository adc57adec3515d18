package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

// Verdict is the availability outcome for a single requested product.
type Verdict struct {
	ProductID kernel.UUID
	Name      string
	Requested int
	Available int
	OK        bool
}

// Shortfall returns how many units are missing, 0 when the request fits.
func (v Verdict) Shortfall() int {
	if v.OK {
		return 0
	}
	return v.Requested - v.Available
}

// Request is one line of a basket to verify.
type Request struct {
	Product  *product.Product
	Quantity int
}

// AvailabilityChecker is a domain service producing stock verdicts for a
// requested basket of products.
//
// Business rules:
//   - Quantities must be positive
//   - Inactive products are never available
//   - A basket is fulfillable only when every line is fulfillable
//
// The checker works on read-time stock observations. The authoritative
// reservation happens later through a conditional storage decrement; the
// verdict exists to fail fast and report shortfalls before any booking
// side effects.
type AvailabilityChecker struct{}

// NewAvailabilityChecker creates a new AvailabilityChecker instance.
func NewAvailabilityChecker() AvailabilityChecker {
	return AvailabilityChecker{}
}

// Check produces the verdict for a single product and quantity.
func (c AvailabilityChecker) Check(p *product.Product, quantity int) (Verdict, error) {
	if err := p.Validate(); err != nil {
		return Verdict{}, err
	}
	if quantity <= 0 {
		return Verdict{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil)
	}

	available := p.Stock()
	if !p.IsActive() {
		available = 0
	}

	return Verdict{
		ProductID: p.ID(),
		Name:      p.Name(),
		Requested: quantity,
		Available: available,
		OK:        available >= quantity,
	}, nil
}

// CheckBasket verifies every line of a basket and returns all verdicts.
// When any line falls short the returned error is a StockUnavailableError
// for the first failing line; callers that need the full shortfall report
// still receive every verdict.
func (c AvailabilityChecker) CheckBasket(lines []Request) ([]Verdict, error) {
	verdicts := make([]Verdict, 0, len(lines))
	var firstFailure error

	for _, line := range lines {
		v, err := c.Check(line.Product, line.Quantity)
		if err != nil {
			return nil, err
		}
		verdicts = append(verdicts, v)
		if !v.OK && firstFailure == nil {
			firstFailure = errs.NewStockUnavailableError(v.ProductID.String(), v.Requested, v.Available)
		}
	}

	return verdicts, firstFailure
}
