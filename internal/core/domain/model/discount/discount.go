// Package discount provides the Discount entity and its eligibility
// rules. Eligibility and amount calculation are pure functions of
// (code, order amount, clock); usage counting is a storage concern and
// lives behind the repository port.
package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDiscountIsNotConstructed is returned when a Discount instance was not
// created through NewDiscount or RestoreDiscount.
var ErrDiscountIsNotConstructed = errors.New("Discount must be created via NewDiscount or RestoreDiscount")

// Eligibility failure reasons, ordered the way Eligibility checks them.
var (
	ErrInactive       = errors.New("discount code is not active")
	ErrOutsideWindow  = errors.New("discount code is outside its validity window")
	ErrUsageExhausted = errors.New("discount usage limit exceeded")
	ErrBelowMinimum   = errors.New("order amount is below the discount minimum")
)

// NormalizeCode maps a user-supplied code to its canonical form.
// Codes are stored upper-cased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Discount is a percentage promotion with an optional cap, minimum order
// amount, usage limit and validity window. Zero values mean "unset" for
// maxDiscountAmount, minOrderAmount and usageLimit.
type Discount struct {
	id                kernel.UUID
	code              string
	percentage        int
	maxDiscountAmount int64
	minOrderAmount    int64
	usageLimit        int
	usedCount         int
	startDate         time.Time
	endDate           time.Time
	isActive          bool

	guard guard.ConstructorGuard
}

// NewDiscount creates an active discount. The code is normalized, the
// percentage must lie in (0, 100] and the window must be ordered.
func NewDiscount(
	id kernel.UUID,
	code string,
	percentage int,
	maxDiscountAmount int64,
	minOrderAmount int64,
	usageLimit int,
	startDate, endDate time.Time,
) (*Discount, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	code = NormalizeCode(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if percentage <= 0 || percentage > 100 {
		return nil, errs.NewValueIsOutOfRangeError("percentage", percentage, 1, 100)
	}
	if maxDiscountAmount < 0 || minOrderAmount < 0 || usageLimit < 0 {
		return nil, errs.NewValueIsInvalidError("discount limits")
	}
	if endDate.Before(startDate) {
		return nil, errs.NewValueIsInvalidErrorWithCause("validity window",
			fmt.Errorf("end %s precedes start %s", endDate.Format(time.RFC3339), startDate.Format(time.RFC3339)))
	}

	return &Discount{
		id:                id,
		code:              code,
		percentage:        percentage,
		maxDiscountAmount: maxDiscountAmount,
		minOrderAmount:    minOrderAmount,
		usageLimit:        usageLimit,
		startDate:         startDate,
		endDate:           endDate,
		isActive:          true,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreDiscount rebuilds a discount from persistence, including its
// usage counter and active flag.
func RestoreDiscount(
	id kernel.UUID,
	code string,
	percentage int,
	maxDiscountAmount int64,
	minOrderAmount int64,
	usageLimit int,
	usedCount int,
	startDate, endDate time.Time,
	isActive bool,
) (*Discount, error) {
	d, err := NewDiscount(id, code, percentage, maxDiscountAmount, minOrderAmount, usageLimit, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if usedCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("usedCount",
			fmt.Errorf("%d is negative", usedCount))
	}
	d.usedCount = usedCount
	d.isActive = isActive
	return d, nil
}

// Validate ensures the Discount was built through a constructor.
func (d *Discount) Validate() error {
	if d == nil {
		return ErrDiscountIsNotConstructed
	}
	return d.guard.Validate(ErrDiscountIsNotConstructed)
}

// ID returns the discount's identity.
func (d *Discount) ID() kernel.UUID {
	return d.id
}

// Code returns the normalized discount code.
func (d *Discount) Code() string {
	return d.code
}

// Percentage returns the discount percentage.
func (d *Discount) Percentage() int {
	return d.percentage
}

// MaxDiscountAmount returns the cap, 0 when uncapped.
func (d *Discount) MaxDiscountAmount() int64 {
	return d.maxDiscountAmount
}

// MinOrderAmount returns the minimum order amount, 0 when unset.
func (d *Discount) MinOrderAmount() int64 {
	return d.minOrderAmount
}

// UsageLimit returns the usage cap, 0 when unlimited.
func (d *Discount) UsageLimit() int {
	return d.usageLimit
}

// UsedCount returns the number of orders that applied this code.
func (d *Discount) UsedCount() int {
	return d.usedCount
}

// StartDate returns the beginning of the validity window.
func (d *Discount) StartDate() time.Time {
	return d.startDate
}

// EndDate returns the end of the validity window.
func (d *Discount) EndDate() time.Time {
	return d.endDate
}

// IsActive reports whether the code may be applied at all.
func (d *Discount) IsActive() bool {
	return d.isActive
}

// Eligibility checks whether the discount can be applied to an order of
// the given amount at the given instant. Checks run in a fixed order and
// the first failing one decides the returned reason. The method never
// mutates the discount; repeated calls are free of side effects.
func (d *Discount) Eligibility(orderAmount int64, now time.Time) error {
	if !d.isActive {
		return ErrInactive
	}
	if now.Before(d.startDate) || now.After(d.endDate) {
		return ErrOutsideWindow
	}
	if d.usageLimit > 0 && d.usedCount >= d.usageLimit {
		return ErrUsageExhausted
	}
	if d.minOrderAmount > 0 && orderAmount < d.minOrderAmount {
		return ErrBelowMinimum
	}
	return nil
}

// AmountFor computes the discount amount for the given order amount:
// orderAmount * percentage / 100, capped at MaxDiscountAmount when set.
func (d *Discount) AmountFor(orderAmount int64) int64 {
	amount := orderAmount * int64(d.percentage) / 100
	if d.maxDiscountAmount > 0 && amount > d.maxDiscountAmount {
		amount = d.maxDiscountAmount
	}
	return amount
}
